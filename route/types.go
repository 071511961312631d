package route

import (
	"errors"
	"time"
)

// Sentinel errors for instance construction and optimization.
var (
	// ErrNetworkNil is returned when a nil network or instance is passed.
	ErrNetworkNil = errors.New("route: network is nil")

	// ErrTooManyValves is returned when the network holds more valves than a
	// bitmask.Mask can track.
	ErrTooManyValves = errors.New("route: too many valves")

	// ErrStartOutOfRange is returned when the start index is not a vertex.
	ErrStartOutOfRange = errors.New("route: start index out of range")

	// ErrMissingDistances is returned when the distance table lacks a row or
	// column the search needs (start and every valve).
	ErrMissingDistances = errors.New("route: distance table incomplete")

	// ErrEligibleOutOfRange is returned when the eligible mask names a bit
	// that is not a valve of the instance.
	ErrEligibleOutOfRange = errors.New("route: eligible mask out of range")

	// ErrOptionViolation is returned for invalid Options.
	ErrOptionViolation = errors.New("route: invalid option")

	// ErrTimeLimit is returned when the soft time limit expires. The
	// accompanying Result holds the best plan found so far.
	ErrTimeLimit = errors.New("route: time limit exceeded")

	// ErrInfeasibleHistory is returned by Schedule when a history violates
	// the timing rule or revisits a valve.
	ErrInfeasibleHistory = errors.New("route: infeasible history")
)

// Frontier selects the order in which pending states are expanded.
type Frontier int

const (
	// FrontierBestFirst expands the state with the highest accumulated
	// value first (ties: higher bound, then insertion order).
	FrontierBestFirst Frontier = iota

	// FrontierDepthFirst expands the most recently generated state first.
	FrontierDepthFirst
)

func (f Frontier) String() string {
	switch f {
	case FrontierBestFirst:
		return "best-first"
	case FrontierDepthFirst:
		return "depth-first"
	default:
		return "unknown"
	}
}

// Bound selects the pruning bound.
type Bound int

const (
	// BoundOptimistic assumes every remaining valve can be reached directly
	// from the current position, ignoring the time the others consume.
	BoundOptimistic Bound = iota

	// BoundNone disables pruning (exhaustive search, testing only).
	BoundNone
)

func (b Bound) String() string {
	switch b {
	case BoundOptimistic:
		return "optimistic"
	case BoundNone:
		return "none"
	default:
		return "unknown"
	}
}

// checkEvery is the expansion cadence of cancellation and deadline checks.
const checkEvery = 4096

// Options configures Optimize.
type Options struct {
	Frontier Frontier
	Bound    Bound

	// RecordHistory keeps parent links so the best activation order can be
	// returned. Without it Result.History is nil.
	RecordHistory bool

	// TimeLimit is a soft wall-clock budget; 0 disables it.
	TimeLimit time.Duration
}

// DefaultOptions returns best-first search with the optimistic bound and
// history recording.
func DefaultOptions() Options {
	return Options{
		Frontier:      FrontierBestFirst,
		Bound:         BoundOptimistic,
		RecordHistory: true,
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Generated    int64 `json:"generated"`    // successor states built
	Expanded     int64 `json:"expanded"`     // states popped and expanded
	Pruned       int64 `json:"pruned"`       // states discarded by the bound
	Improvements int64 `json:"improvements"` // incumbent updates
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Generated += o.Generated
	s.Expanded += o.Expanded
	s.Pruned += o.Pruned
	s.Improvements += o.Improvements
}

// Result is the outcome of one single-agent search.
type Result struct {
	// Value is the total quantity released by the best plan.
	Value int64

	// History lists network indices, start first, then the valves in
	// activation order. Nil when history recording was disabled.
	History []int

	Stats Stats
}

// Activation is one step of a replayed history.
type Activation struct {
	Valve    int   // network index
	Minute   int   // minutes elapsed when the valve finishes opening
	Left     int   // minutes remaining after activation
	Released int64 // rate × Left
}
