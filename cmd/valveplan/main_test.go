package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveplan/planner"
)

const testdata = "../../scenario/testdata"

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRun_ScenarioText(t *testing.T) {
	out, _, err := runCLI(t, "-scenario", filepath.Join(testdata, "triangle.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "total: 416")
	assert.Contains(t, out, "open BB")
}

func TestRun_ScenarioJSON(t *testing.T) {
	out, _, err := runCLI(t, "-json", "-scenario", filepath.Join(testdata, "cave.yaml"))
	require.NoError(t, err)

	var res planner.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(1651), res.Value)
	assert.Equal(t, 30, res.Budget)
	require.Len(t, res.Agents, 1)
	hist := res.Agents[0].History
	require.NotEmpty(t, hist)
	assert.Equal(t, "AA", hist[0])
	assert.Len(t, res.Agents[0].Activations, len(hist)-1)
}

func TestRun_FlagsOverrideScenario(t *testing.T) {
	out, _, err := runCLI(t, "-json", "-agents", "2", "-budget", "26",
		"-scenario", filepath.Join(testdata, "cave.yaml"))
	require.NoError(t, err)

	var res planner.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(1707), res.Value)
	assert.Len(t, res.Agents, 2)
}

func TestRun_RandomIsDeterministic(t *testing.T) {
	args := []string{"-json", "-random", "18", "-seed", "3"}
	a, _, err := runCLI(t, args...)
	require.NoError(t, err)
	b, _, err := runCLI(t, args...)
	require.NoError(t, err)

	var ra, rb planner.Result
	require.NoError(t, json.Unmarshal([]byte(a), &ra))
	require.NoError(t, json.Unmarshal([]byte(b), &rb))
	assert.Equal(t, ra.Value, rb.Value)
	assert.Equal(t, ra.Agents[0].History, rb.Agents[0].History)
	assert.Equal(t, "AA", ra.Start)
}

func TestRun_MetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valveplan.prom")
	_, _, err := runCLI(t, "-metrics-out", path, "-scenario", filepath.Join(testdata, "triangle.yaml"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `valveplan_plans_total{agents="1",outcome="ok"} 1`)
	assert.Contains(t, string(raw), "valveplan_best_value")
}

func TestRun_LogLevel(t *testing.T) {
	_, logs, err := runCLI(t, "-log-level", "debug", "-scenario", filepath.Join(testdata, "triangle.yaml"))
	require.NoError(t, err)
	assert.Contains(t, logs, "level=INFO")
	assert.True(t, strings.Contains(logs, "run_id="))

	_, _, err = runCLI(t, "-log-level", "loud", "-scenario", filepath.Join(testdata, "triangle.yaml"))
	require.Error(t, err)
}

func TestRun_BadArguments(t *testing.T) {
	_, _, err := runCLI(t)
	require.Error(t, err)

	_, _, err = runCLI(t, "-random", "5", "-scenario", "x.yaml")
	require.Error(t, err)

	_, _, err = runCLI(t, "-scenario", filepath.Join(testdata, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runCLI(t, "-agents", "3", "-scenario", filepath.Join(testdata, "triangle.yaml"))
	require.ErrorIs(t, err, planner.ErrOptionViolation)

	_, help, err := runCLI(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, help, "Usage: valveplan")
}
