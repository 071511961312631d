// Package route — best-first branch-and-bound for one agent.
//
// Optimize searches the orders in which one agent can activate a subset of
// valves within a minute budget. A state records the agent position, the
// valves still closed, the minutes left and the value accumulated so far;
// every activation is credited up front for all remaining minutes, so the
// value of a state is final for the valves it has opened.
//
// Rationale (succinct):
//  1. The instance prefetches start and valve-to-valve hop counts into dense
//     slices, so the hot loop never touches the distance table.
//  2. Timing rule: moving to D and opening it costs hops+1 minutes and is
//     allowed only while that leaves at least one productive minute
//     (hops+1 < left).
//  3. Bound: value + Σ rate(n)·max(0, left − hops(cur, n) − 1) over the
//     valves still closed. Every valve is assumed reachable directly from
//     the current position, so the bound never underestimates.
//     Successors whose bound does not exceed the incumbent are dropped;
//     states whose bound went stale while queued are dropped on pop.
//  4. Frontier: best-first on accumulated value (B-tree) or LIFO stack.
//     Pruning is bound-based, so both orders return the optimum.
//  5. Soft time limit and ctx: checked every 4096 expansions.
//
// Complexity:
//   - Worst case exponential in the number of eligible valves.
//   - Per expansion: O(k) successors, each with an O(k) bound.
//   - Memory: the frontier plus one parent link per generated state.
package route

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/valveplan/bitmask"
	"github.com/katalvlaran/valveplan/distance"
)

// atStart marks a state positioned on the start vertex.
const atStart = -1

// histNode is a persistent parent-linked history; siblings share prefixes.
type histNode struct {
	bit  int
	prev *histNode
}

// state is one search node.
type state struct {
	cur       int // valve bit, or atStart
	remaining bitmask.Mask
	left      int
	value     int64
	bound     int64
	seq       uint64
	hist      *histNode
}

// engine holds all data of one search.
type engine struct {
	inst *Instance
	k    int
	opts Options
	ctx  context.Context

	useDeadline bool
	deadline    time.Time
	steps       int

	front frontier
	seq   uint64

	best     int64
	bestHist *histNode
	stats    Stats
}

// hopsFrom returns the hop count from position cur to valve bit b.
func (e *engine) hopsFrom(cur, b int) int {
	if cur == atStart {
		return e.inst.startHops[b]
	}

	return e.inst.hops[cur*e.k+b]
}

// bound returns the optimistic completion value of s.
func (e *engine) bound(s *state) int64 {
	total := s.value
	s.remaining.Each(func(b int) {
		d := e.hopsFrom(s.cur, b)
		if d == distance.Unreachable {
			return
		}
		if rest := s.left - d - 1; rest > 0 {
			total += e.inst.rates[b] * int64(rest)
		}
	})

	return total
}

// check performs the sparse cancellation and deadline test.
func (e *engine) check() error {
	e.steps++
	if e.steps&(checkEvery-1) != 0 {
		return nil
	}
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// Optimize returns the highest total release one agent starting at the
// instance start can achieve by activating valves of eligible within budget
// minutes, together with the activation history.
//
// eligible empty or budget ≤ 1 yields value 0 and history [start].
// Valves unreachable from the current position are skipped, never an error.
// On ErrTimeLimit or ctx cancellation the Result holds the incumbent.
func Optimize(ctx context.Context, inst *Instance, eligible bitmask.Mask, budget int, opts Options) (Result, error) {
	if inst == nil {
		return Result{}, ErrNetworkNil
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if !eligible.SubsetOf(inst.Full()) {
		return Result{}, fmt.Errorf("%w: %v not within %v", ErrEligibleOutOfRange, eligible, inst.Full())
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	e := &engine{
		inst: inst,
		k:    len(inst.valves),
		opts: opts,
		ctx:  ctx,
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	var err error
	if !eligible.Empty() && budget > 1 {
		err = e.run(eligible, budget)
	}

	return e.result(), err
}

func validateOptions(opts Options) error {
	switch {
	case opts.TimeLimit < 0:
		return fmt.Errorf("%w: negative time limit %v", ErrOptionViolation, opts.TimeLimit)
	case opts.Frontier != FrontierBestFirst && opts.Frontier != FrontierDepthFirst:
		return fmt.Errorf("%w: frontier %d", ErrOptionViolation, opts.Frontier)
	case opts.Bound != BoundOptimistic && opts.Bound != BoundNone:
		return fmt.Errorf("%w: bound %d", ErrOptionViolation, opts.Bound)
	}

	return nil
}

// run drives the search loop from the root state.
func (e *engine) run(eligible bitmask.Mask, budget int) error {
	useBound := e.opts.Bound == BoundOptimistic
	e.front = newFrontier(e.opts.Frontier)

	root := &state{cur: atStart, remaining: eligible, left: budget}
	root.bound = e.bound(root)
	e.push(root)

	for e.front.len() > 0 {
		if err := e.check(); err != nil {
			return err
		}
		s, _ := e.front.pop()
		if useBound && s.bound <= e.best {
			e.stats.Pruned++
			continue
		}
		e.stats.Expanded++
		s.remaining.Each(func(b int) { e.expand(s, b, useBound) })
	}

	return nil
}

// expand builds the successor of s that activates valve b next.
func (e *engine) expand(s *state, b int, useBound bool) {
	d := e.hopsFrom(s.cur, b)
	if d == distance.Unreachable || d+1 >= s.left {
		return
	}
	left := s.left - d - 1
	child := &state{
		cur:       b,
		remaining: s.remaining.Without(b),
		left:      left,
		value:     s.value + e.inst.rates[b]*int64(left),
	}
	if e.opts.RecordHistory {
		child.hist = &histNode{bit: b, prev: s.hist}
	}
	e.stats.Generated++

	if child.value > e.best {
		e.best = child.value
		e.bestHist = child.hist
		e.stats.Improvements++
	}
	if child.remaining.Empty() {
		return
	}
	child.bound = e.bound(child)
	if useBound && child.bound <= e.best {
		e.stats.Pruned++
		return
	}
	e.push(child)
}

func (e *engine) push(s *state) {
	e.seq++
	s.seq = e.seq
	e.front.push(s)
}

// result materializes the incumbent.
func (e *engine) result() Result {
	r := Result{Value: e.best, Stats: e.stats}
	if !e.opts.RecordHistory {
		return r
	}
	n := 1
	for h := e.bestHist; h != nil; h = h.prev {
		n++
	}
	r.History = make([]int, n)
	r.History[0] = e.inst.start
	i := n - 1
	for h := e.bestHist; h != nil; h = h.prev {
		r.History[i] = e.inst.valves[h.bit]
		i--
	}

	return r
}
