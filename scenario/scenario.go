// Package scenario loads planning scenarios from YAML documents.
//
// A scenario names the start vertex, the time budget, the number of agents
// and every vertex of the network with its rate and tunnels:
//
//	name: cave
//	start: AA
//	budget: 30
//	agents: 1
//	stuck: [CC]      # valves that cannot be opened; they stay passable
//	sealed: [GG]     # vertices removed together with their tunnels
//	valves:
//	  - {id: AA, rate: 0, tunnels: [DD, II, BB]}
//	  - {id: BB, rate: 13, tunnels: [CC, AA]}
//
// Decoding is strict: unknown keys are rejected.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/planner"
)

// Sentinel errors for scenario validation.
var (
	ErrMissingStart   = errors.New("scenario: start is empty")
	ErrNoValves       = errors.New("scenario: no valves defined")
	ErrDuplicateValve = errors.New("scenario: duplicate valve id")
	ErrUnknownVertex  = errors.New("scenario: unknown vertex")
	ErrInvalidField   = errors.New("scenario: invalid field value")
)

// Valve is one vertex entry. Entries with rate 0 are passages.
type Valve struct {
	ID      string   `yaml:"id"`
	Rate    int64    `yaml:"rate"`
	Tunnels []string `yaml:"tunnels"`
}

// Scenario is the decoded document.
type Scenario struct {
	Name   string   `yaml:"name"`
	Start  string   `yaml:"start"`
	Budget *int     `yaml:"budget"` // absent selects the planner default
	Agents int      `yaml:"agents"` // 0 means 1
	Stuck  []string `yaml:"stuck"`
	Sealed []string `yaml:"sealed"`
	Valves []Valve  `yaml:"valves"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Decode parses one YAML document from r with strict field checking and
// validates it.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("scenario: yaml: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Validate checks the document for structural errors. Tunnel targets
// are checked when the graph is built.
func (sc *Scenario) Validate() error {
	if sc.Start == "" {
		return ErrMissingStart
	}
	if len(sc.Valves) == 0 {
		return ErrNoValves
	}
	if sc.Budget != nil && *sc.Budget < 0 {
		return fmt.Errorf("%w: budget %d", ErrInvalidField, *sc.Budget)
	}
	if sc.Agents < 0 || sc.Agents > 2 {
		return fmt.Errorf("%w: agents %d", ErrInvalidField, sc.Agents)
	}

	ids := make(map[string]bool, len(sc.Valves))
	for i, v := range sc.Valves {
		if v.ID == "" {
			return fmt.Errorf("%w: valves[%d] has no id", ErrInvalidField, i)
		}
		if v.Rate < 0 {
			return fmt.Errorf("%w: valve %q rate %d", ErrInvalidField, v.ID, v.Rate)
		}
		if ids[v.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateValve, v.ID)
		}
		ids[v.ID] = true
	}
	if !ids[sc.Start] {
		return fmt.Errorf("%w: start %q", ErrUnknownVertex, sc.Start)
	}
	for _, id := range sc.Stuck {
		if !ids[id] {
			return fmt.Errorf("%w: stuck %q", ErrUnknownVertex, id)
		}
	}
	for _, id := range sc.Sealed {
		if !ids[id] {
			return fmt.Errorf("%w: sealed %q", ErrUnknownVertex, id)
		}
		if id == sc.Start {
			return fmt.Errorf("%w: start %q is sealed", ErrInvalidField, id)
		}
	}

	return nil
}

// Graph builds the network described by the scenario, with stuck valves
// turned into passages and sealed vertices removed.
func (sc *Scenario) Graph() (*core.Graph, error) {
	defs := make(map[string]core.Definition, len(sc.Valves))
	for _, v := range sc.Valves {
		defs[v.ID] = core.Definition{Rate: v.Rate, Neighbors: v.Tunnels}
	}
	g, err := core.FromDefinitions(defs)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if len(sc.Stuck) > 0 {
		g = core.PassageView(g, sc.Stuck...)
	}
	if len(sc.Sealed) > 0 {
		keep := make(map[string]bool, len(defs))
		for id := range defs {
			keep[id] = true
		}
		for _, id := range sc.Sealed {
			delete(keep, id)
		}
		g = core.InducedSubgraph(g, keep)
	}

	return g, nil
}

// Options returns the planner options the scenario pins down.
func (sc *Scenario) Options() []planner.Option {
	var opts []planner.Option
	if sc.Agents > 0 {
		opts = append(opts, planner.WithAgents(sc.Agents))
	}
	if sc.Budget != nil {
		opts = append(opts, planner.WithTimeBudget(*sc.Budget))
	}

	return opts
}
