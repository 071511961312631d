// Command valveplan computes the maximum pressure release plan for a
// scenario file or a generated random network.
//
// Usage:
//
//	valveplan [options] -scenario cave.yaml
//	valveplan [options] -random 40 -seed 7
//
// Flags given explicitly override the values pinned by the scenario.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/valveplan/builder"
	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/metrics"
	"github.com/katalvlaran/valveplan/planner"
	"github.com/katalvlaran/valveplan/route"
	"github.com/katalvlaran/valveplan/scenario"
)

const helpMessage = `
valveplan finds the activation order that releases the most pressure
before the time budget runs out.

Usage: valveplan [options] (-scenario <file> | -random <n>)

  -scenario     (string)  YAML scenario file
  -random       (int)     generate a random network with n vertices instead
  -seed         (int)     seed for -random (default 1)
  -density      (float)   extra tunnel probability for -random (default 0.08)
  -agents       (int)     1 or 2 agents
  -budget       (int)     minutes per agent (default 30 for one agent, 26 for two)
  -workers      (int)     concurrent searches for the dual split
  -timeout      (dur)     soft limit per search, e.g. 30s
  -metrics-out  (string)  write Prometheus textfile metrics here
  -log-level    (string)  debug, info, warn or error (default warn)
  -json                   print the plan as JSON
  -h, -help               show this message
`

// config is the parsed command line.
type config struct {
	scenario   string
	random     int
	seed       int64
	density    float64
	agents     int
	budget     int
	workers    int
	timeout    time.Duration
	metricsOut string
	logLevel   string
	asJSON     bool

	set map[string]bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "valveplan:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{set: make(map[string]bool)}
	fs := flag.NewFlagSet("valveplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, helpMessage) }

	var showHelp bool
	fs.BoolVar(&showHelp, "help", false, "")
	fs.BoolVar(&showHelp, "h", false, "")
	fs.StringVar(&cfg.scenario, "scenario", "", "")
	fs.IntVar(&cfg.random, "random", 0, "")
	fs.Int64Var(&cfg.seed, "seed", 1, "")
	fs.Float64Var(&cfg.density, "density", 0.08, "")
	fs.IntVar(&cfg.agents, "agents", 1, "")
	fs.IntVar(&cfg.budget, "budget", 0, "")
	fs.IntVar(&cfg.workers, "workers", 0, "")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "")
	fs.StringVar(&cfg.metricsOut, "metrics-out", "", "")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "")
	fs.BoolVar(&cfg.asJSON, "json", false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if showHelp {
		fs.Usage()
		return nil, flag.ErrHelp
	}
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })

	switch {
	case cfg.scenario == "" && cfg.random == 0:
		fs.Usage()
		return nil, errors.New("one of -scenario or -random is required")
	case cfg.scenario != "" && cfg.random != 0:
		return nil, errors.New("-scenario and -random are mutually exclusive")
	case cfg.random < 0:
		return nil, fmt.Errorf("-random must be positive (%d)", cfg.random)
	}

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("bad -log-level %q: %w", s, err)
	}

	return lvl, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	lvl, err := parseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	g, start, opts, err := load(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, planner.WithLogger(logger))
	if cfg.set["agents"] {
		opts = append(opts, planner.WithAgents(cfg.agents))
	}
	if cfg.set["budget"] {
		opts = append(opts, planner.WithTimeBudget(cfg.budget))
	}
	if cfg.workers > 0 {
		opts = append(opts, planner.WithWorkers(cfg.workers))
	}
	if cfg.timeout > 0 {
		opts = append(opts, planner.WithTimeLimit(cfg.timeout))
	}

	reg := metrics.NewRegistry()
	collector, err := metrics.New(reg)
	if err != nil {
		return err
	}
	opts = append(opts, planner.WithObserver(collector))

	res, planErr := planner.Plan(ctx, g, start, opts...)
	if cfg.metricsOut != "" {
		if err := metrics.WriteTextfile(cfg.metricsOut, reg); err != nil {
			logger.Error("metrics textfile", "path", cfg.metricsOut, "err", err)
		}
	}
	if res == nil {
		return planErr
	}
	if planErr != nil {
		logger.Warn("plan incomplete, reporting best found", "err", planErr)
	}

	if cfg.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printPlan(stdout, res)
	}

	if errors.Is(planErr, route.ErrTimeLimit) {
		return nil
	}

	return planErr
}

// load builds the graph and the options pinned by the input source.
func load(cfg *config) (*core.Graph, string, []planner.Option, error) {
	if cfg.random > 0 {
		g, err := randomNetwork(cfg.random, cfg.seed, cfg.density)
		if err != nil {
			return nil, "", nil, err
		}

		return g, builder.CaveIDFn(0), nil, nil
	}

	sc, err := scenario.Load(cfg.scenario)
	if err != nil {
		return nil, "", nil, err
	}
	g, err := sc.Graph()
	if err != nil {
		return nil, "", nil, err
	}

	return g, sc.Start, sc.Options(), nil
}

// randomNetwork lays a path through n vertices so everything is reachable,
// sprinkles extra tunnels over it and makes every third vertex a valve.
func randomNetwork(n int, seed int64, density float64) (*core.Graph, error) {
	return builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithRateFn(builder.UniformRate(1, 25)),
			builder.WithRateEvery(3),
		},
		builder.Path(n),
		builder.RandomSparse(n, density),
	)
}

func printPlan(w io.Writer, res *planner.Result) {
	fmt.Fprintf(w, "run %s: start %s, %d minutes, %d agent(s)\n",
		res.RunID, res.Start, res.Budget, len(res.Agents))
	for i, a := range res.Agents {
		fmt.Fprintf(w, "agent %d: %s released\n", i+1, humanize.Comma(a.Value))
		for _, act := range a.Activations {
			fmt.Fprintf(w, "  minute %2d  open %-4s %s\n",
				act.Minute, act.Valve, humanize.Comma(act.Released))
		}
	}
	fmt.Fprintf(w, "total: %s\n", humanize.Comma(res.Value))
	fmt.Fprintf(w, "search: %s generated, %s expanded, %s pruned in %s\n",
		humanize.Comma(res.Stats.Generated),
		humanize.Comma(res.Stats.Expanded),
		humanize.Comma(res.Stats.Pruned),
		res.Elapsed.Round(time.Microsecond))
}
