// Package dual splits the valves between two agents that move at the same
// time and never open the same valve.
//
// Rationale (succinct):
//  1. The agents are independent once the valves are partitioned, so the
//     best split is max over m of best(m) + best(complement of m), where
//     best is the single-agent optimum restricted to a subset.
//  2. Eligible valves are compacted to bit positions 0..N−1; valves no
//     agent can reach in time are dropped first, shrinking the table.
//  3. best is computed for all 2^N subsets concurrently (errgroup, bounded
//     workers); every slot is written by exactly one task.
//  4. Only m in [0, 2^(N−1)) is scanned: the top bit of the complement is
//     set, so each unordered pair is seen once. Ties keep the smallest m.
//  5. The two winning subsets are solved again with history recording.
//
// Complexity: 2^N single-agent searches; memory O(2^N).
package dual

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valveplan/bitmask"
	"github.com/katalvlaran/valveplan/route"
)

// Optimize returns the best combined release of two agents that both start
// at the instance start with budget minutes each and activate disjoint
// subsets of eligible.
//
// Errors: route.ErrNetworkNil, route.ErrEligibleOutOfRange,
// ErrOptionViolation, ErrTooManyValves, ctx errors and route.ErrTimeLimit
// from the underlying searches.
func Optimize(ctx context.Context, inst *route.Instance, eligible bitmask.Mask, budget int, opts Options) (Result, error) {
	if inst == nil {
		return Result{}, route.ErrNetworkNil
	}
	if opts.Workers < 1 || opts.MaxValves < 0 || opts.MaxValves > MaxSplitValves {
		return Result{}, fmt.Errorf("%w: workers=%d max valves=%d", ErrOptionViolation, opts.Workers, opts.MaxValves)
	}
	if !eligible.SubsetOf(inst.Full()) {
		return Result{}, fmt.Errorf("%w: %v not within %v", route.ErrEligibleOutOfRange, eligible, inst.Full())
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pool := eligible
	if opts.PruneUnreachable {
		pool &= inst.Reachable(budget)
	}
	positions := pool.Bits()
	n := len(positions)
	if n > opts.MaxValves {
		return Result{}, fmt.Errorf("%w: %d eligible, limit %d", ErrTooManyValves, n, opts.MaxValves)
	}

	search := opts.Search
	search.RecordHistory = false
	values, stats, err := solveAll(ctx, inst, positions, budget, search, opts.Workers)
	if err != nil {
		return Result{}, err
	}

	full := bitmask.Full(n)
	var bestM bitmask.Mask
	best := int64(-1)
	half := bitmask.Mask(1)
	if n > 0 {
		half = 1 << uint(n-1)
	}
	for m := bitmask.Mask(0); m < half; m++ {
		if v := values[m] + values[full^m]; v > best {
			best, bestM = v, m
		}
	}

	res := Result{
		Value:   best,
		Split:   [2]bitmask.Mask{bitmask.Expand(bestM, positions), bitmask.Expand(full^bestM, positions)},
		Subsets: len(values),
	}
	search.RecordHistory = true
	for i, side := range res.Split {
		r, err := route.Optimize(ctx, inst, side, budget, search)
		if err != nil {
			return Result{}, fmt.Errorf("dual: agent %d: %w", i, err)
		}
		res.Agents[i] = r
		stats.Add(r.Stats)
	}
	res.Stats = stats

	return res, nil
}

// solveAll fills values[m] with the single-agent optimum over the valves
// selected by compact mask m, for every m in [0, 2^N).
func solveAll(ctx context.Context, inst *route.Instance, positions []int, budget int, search route.Options, workers int) ([]int64, route.Stats, error) {
	total := 1 << uint(len(positions))
	values := make([]int64, total)
	chunks := (total + chunkSize - 1) / chunkSize
	perChunk := make([]route.Stats, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		if gctx.Err() != nil {
			break
		}
		c := c
		g.Go(func() error {
			lo := c * chunkSize
			hi := min(lo+chunkSize, total)
			for m := lo; m < hi; m++ {
				r, err := route.Optimize(gctx, inst, bitmask.Expand(bitmask.Mask(m), positions), budget, search)
				if err != nil {
					return err
				}
				values[m] = r.Value
				perChunk[c].Add(r.Stats)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, route.Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, route.Stats{}, err
	}

	var stats route.Stats
	for _, s := range perChunk {
		stats.Add(s)
	}

	return values, stats, nil
}
