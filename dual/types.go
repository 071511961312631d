package dual

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/valveplan/bitmask"
	"github.com/katalvlaran/valveplan/route"
)

var (
	// ErrTooManyValves is returned when the eligible valves exceed
	// Options.MaxValves; the split table grows as 2^N.
	ErrTooManyValves = errors.New("dual: too many valves to split")

	// ErrOptionViolation is returned for invalid Options.
	ErrOptionViolation = errors.New("dual: invalid option")
)

// DefaultMaxValves caps the split enumeration at about a million subsets.
const DefaultMaxValves = 20

// MaxSplitValves is the largest MaxValves accepted: the value table of
// 2^24 subsets already takes 128 MiB.
const MaxSplitValves = 24

// chunkSize is the number of subsets solved per task.
const chunkSize = 256

// Options configures Optimize.
type Options struct {
	// MaxValves is the largest number of eligible valves accepted,
	// at most MaxSplitValves.
	MaxValves int

	// Workers bounds the number of concurrent subset searches.
	Workers int

	// PruneUnreachable drops valves no agent can open within the budget
	// before enumerating splits.
	PruneUnreachable bool

	// Search configures every single-agent search. RecordHistory is
	// managed by Optimize.
	Search route.Options
}

// DefaultOptions returns MaxValves 20, GOMAXPROCS workers, unreachable
// pruning and default search options.
func DefaultOptions() Options {
	return Options{
		MaxValves:        DefaultMaxValves,
		Workers:          runtime.GOMAXPROCS(0),
		PruneUnreachable: true,
		Search:           route.DefaultOptions(),
	}
}

// Result is the outcome of a dual-agent search.
type Result struct {
	// Value is the combined release of both agents.
	Value int64

	// Agents holds each agent's single-agent result with history.
	Agents [2]route.Result

	// Split holds the disjoint valve masks assigned to each agent.
	Split [2]bitmask.Mask

	// Subsets is the number of subsets solved (2^N).
	Subsets int

	// Stats sums the work of every search, including the final re-solves.
	Stats route.Stats
}
