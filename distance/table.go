package distance

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valveplan/bfs"
	"github.com/katalvlaran/valveplan/core"
)

// Table is an immutable source × target matrix of hop counts.
// It is safe for concurrent reads.
type Table struct {
	sources []int
	targets []int
	srcPos  map[int]int
	tgtPos  map[int]int
	hops    []int // len(sources) * len(targets), row-major
}

// Compute runs one breadth-first search per source and records the hop
// count to every target. Duplicate sources and targets are collapsed and
// both axes are kept in ascending order. Pairs without a connecting walk
// are stored as Unreachable; that is never an error.
//
// Searches run concurrently (Options.Workers). The first failure, or
// cancellation of ctx, aborts the remaining searches.
//
// Complexity: O(S·(V + E)) time, O(S·T) memory.
func Compute(ctx context.Context, net *core.Network, sources []int, opts ...Option) (*Table, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	targets := o.Targets
	if targets == nil {
		targets = net.Valves()
	}

	t := &Table{
		sources: uniqueSorted(sources),
		targets: uniqueSorted(targets),
	}
	for _, v := range t.sources {
		if !net.Contains(v) {
			return nil, fmt.Errorf("%w: source %d", ErrVertexOutOfRange, v)
		}
	}
	for _, v := range t.targets {
		if !net.Contains(v) {
			return nil, fmt.Errorf("%w: target %d", ErrVertexOutOfRange, v)
		}
	}
	t.srcPos = positions(t.sources)
	t.tgtPos = positions(t.targets)
	t.hops = make([]int, len(t.sources)*len(t.targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for row, src := range t.sources {
		row, src := row, src
		g.Go(func() error {
			res, err := bfs.BFS(net, src, bfs.WithContext(gctx))
			if err != nil {
				return fmt.Errorf("distance: source %d: %w", src, err)
			}
			base := row * len(t.targets)
			for col, dst := range t.targets {
				d, ok := res.DistanceTo(dst)
				if !ok {
					d = Unreachable
				}
				t.hops[base+col] = d
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// At returns the hop count from → to. ok is false when the pair is not in
// the table or to is unreachable from from.
func (t *Table) At(from, to int) (hops int, ok bool) {
	d := t.Hops(from, to)

	return d, d != Unreachable
}

// Hops returns the hop count from → to, or Unreachable.
func (t *Table) Hops(from, to int) int {
	r, ok := t.srcPos[from]
	if !ok {
		return Unreachable
	}
	c, ok := t.tgtPos[to]
	if !ok {
		return Unreachable
	}

	return t.hops[r*len(t.targets)+c]
}

// HasSource reports whether v has a row in the table.
func (t *Table) HasSource(v int) bool {
	_, ok := t.srcPos[v]

	return ok
}

// HasTarget reports whether v has a column in the table.
func (t *Table) HasTarget(v int) bool {
	_, ok := t.tgtPos[v]

	return ok
}

// Sources returns a copy of the source axis, ascending.
func (t *Table) Sources() []int { return append([]int(nil), t.sources...) }

// Targets returns a copy of the target axis, ascending.
func (t *Table) Targets() []int { return append([]int(nil), t.targets...) }

// Equal reports whether both tables have identical axes and entries.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !slices.Equal(t.sources, other.sources) || !slices.Equal(t.targets, other.targets) {
		return false
	}

	return slices.Equal(t.hops, other.hops)
}

func uniqueSorted(in []int) []int {
	out := append([]int(nil), in...)
	slices.Sort(out)

	return slices.Compact(out)
}

func positions(axis []int) map[int]int {
	m := make(map[int]int, len(axis))
	for i, v := range axis {
		m[v] = i
	}

	return m
}
