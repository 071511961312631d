package planner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/valveplan/dual"
	"github.com/katalvlaran/valveplan/route"
)

// Sentinel errors for Plan.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("planner: graph is nil")

	// ErrStartNotFound is returned when the start vertex is absent.
	ErrStartNotFound = errors.New("planner: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")
)

// Default time budgets: one agent works alone for 30 minutes; two agents
// lose 4 minutes to coordination and get 26 each.
const (
	DefaultSoloBudget = 30
	DefaultDualBudget = 26
)

// Observer receives one Report per Plan call that passes validation,
// whether the search then succeeds or fails. Option errors, a nil graph
// and a missing start vertex are returned without a report.
type Observer interface {
	ObservePlan(Report)
}

// Report summarizes one Plan call for observers.
type Report struct {
	RunID   string
	Agents  int
	Valves  int // valves considered by the search
	Value   int64
	Stats   route.Stats
	Elapsed time.Duration
	Err     error
}

// Option configures Plan via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Plan is invoked.
type Option func(*Options)

// Options holds the planner configuration.
type Options struct {
	Agents        int
	Budget        int // per-agent-count default unless set by WithTimeBudget
	Workers       int
	TimeLimit     time.Duration
	MaxDualValves int
	Frontier      route.Frontier
	Bound         route.Bound
	Logger        *slog.Logger
	Observer      Observer

	budgetSet bool
	err       error
}

// DefaultOptions returns one agent, the default budget, GOMAXPROCS workers,
// best-first search with the optimistic bound and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Agents:        1,
		Workers:       runtime.GOMAXPROCS(0),
		MaxDualValves: dual.DefaultMaxValves,
		Frontier:      route.FrontierBestFirst,
		Bound:         route.BoundOptimistic,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithAgents sets the number of agents; only 1 and 2 are supported.
func WithAgents(n int) Option {
	return func(o *Options) {
		if n != 1 && n != 2 {
			o.fail("agents must be 1 or 2 (%d)", n)
			return
		}
		o.Agents = n
	}
}

// WithTimeBudget sets the minutes available to each agent. Zero is valid
// and yields an empty plan.
func WithTimeBudget(minutes int) Option {
	return func(o *Options) {
		if minutes < 0 {
			o.fail("time budget cannot be negative (%d)", minutes)
			return
		}
		o.Budget = minutes
		o.budgetSet = true
	}
}

// WithWorkers bounds the concurrent searches of the dual split.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("workers must be >= 1 (%d)", n)
			return
		}
		o.Workers = n
	}
}

// WithTimeLimit sets the soft wall-clock limit of each search.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.fail("time limit cannot be negative (%v)", d)
			return
		}
		o.TimeLimit = d
	}
}

// WithMaxDualValves caps the valves the dual split may enumerate.
func WithMaxDualValves(n int) Option {
	return func(o *Options) {
		if n < 0 || n > dual.MaxSplitValves {
			o.fail("max dual valves must be in [0,%d] (%d)", dual.MaxSplitValves, n)
			return
		}
		o.MaxDualValves = n
	}
}

// WithFrontier selects the expansion order.
func WithFrontier(f route.Frontier) Option {
	return func(o *Options) { o.Frontier = f }
}

// WithBound selects the pruning bound.
func WithBound(b route.Bound) Option {
	return func(o *Options) { o.Bound = b }
}

// WithLogger sets the structured logger; nil keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer for run reports.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// Activation is one valve opening with vertex IDs resolved.
type Activation struct {
	Valve    string `json:"valve"`
	Minute   int    `json:"minute"`
	Left     int    `json:"left"`
	Released int64  `json:"released"`
}

// AgentPlan is one agent's share of a plan.
type AgentPlan struct {
	Value       int64        `json:"value"`
	History     []string     `json:"history"`
	Activations []Activation `json:"activations"`

	// Walk is the vertex-by-vertex route, passages included, start first.
	Walk []string `json:"walk"`
}

// Result is a complete plan.
type Result struct {
	RunID   string        `json:"run_id"`
	Start   string        `json:"start"`
	Budget  int           `json:"budget"`
	Value   int64         `json:"value"`
	Agents  []AgentPlan   `json:"agents"`
	Stats   route.Stats   `json:"stats"`
	Elapsed time.Duration `json:"elapsed_ns"`
}
