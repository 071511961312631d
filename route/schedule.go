package route

import (
	"fmt"

	"github.com/katalvlaran/valveplan/bitmask"
	"github.com/katalvlaran/valveplan/distance"
)

// Schedule replays history (start first, then valves in activation order)
// under the timing rule and reports when each valve opens and what it
// releases. The sum of Released equals the value Optimize reported for
// the same history.
//
// Errors: ErrNetworkNil, ErrInfeasibleHistory when the history does not
// begin at the start, names a non-valve, repeats a valve, or violates
// hops+1 < left.
func Schedule(inst *Instance, history []int, budget int) ([]Activation, error) {
	if inst == nil {
		return nil, ErrNetworkNil
	}
	if len(history) == 0 || history[0] != inst.start {
		return nil, fmt.Errorf("%w: history must begin at start %d", ErrInfeasibleHistory, inst.start)
	}

	var (
		out  = make([]Activation, 0, len(history)-1)
		cur  = atStart
		left = budget
		seen bitmask.Mask
	)
	for i, v := range history[1:] {
		b, ok := inst.bitOf[v]
		if !ok {
			return nil, fmt.Errorf("%w: step %d: vertex %d is not a valve", ErrInfeasibleHistory, i+1, v)
		}
		if seen.Has(b) {
			return nil, fmt.Errorf("%w: step %d: valve %d repeated", ErrInfeasibleHistory, i+1, v)
		}
		var d int
		if cur == atStart {
			d = inst.startHops[b]
		} else {
			d = inst.Hops(cur, b)
		}
		if d == distance.Unreachable || d+1 >= left {
			return nil, fmt.Errorf("%w: step %d: valve %d needs %d+1 of %d minutes", ErrInfeasibleHistory, i+1, v, d, left)
		}
		left -= d + 1
		out = append(out, Activation{
			Valve:    v,
			Minute:   budget - left,
			Left:     left,
			Released: inst.rates[b] * int64(left),
		})
		seen = seen.With(b)
		cur = b
	}

	return out, nil
}

// Total sums the Released column of a schedule.
func Total(acts []Activation) int64 {
	var sum int64
	for _, a := range acts {
		sum += a.Released
	}

	return sum
}
