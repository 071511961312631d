package route

import "github.com/katalvlaran/valveplan/bitmask"

// AtStart exposes the start position marker for bound tests.
const AtStart = atStart

// OptimisticBound exposes the pruning bound of a hypothetical state.
func OptimisticBound(inst *Instance, cur int, remaining bitmask.Mask, left int, value int64) int64 {
	e := &engine{inst: inst, k: len(inst.valves)}

	return e.bound(&state{cur: cur, remaining: remaining, left: left, value: value})
}

// StateLess exposes the best-first ordering.
func StateLess(av, ab int64, aseq uint64, bv, bb int64, bseq uint64) bool {
	return stateLess(&state{value: av, bound: ab, seq: aseq}, &state{value: bv, bound: bb, seq: bseq})
}
