// Package bfs provides breadth-first search over a core.Network,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valveplan/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	net   *core.Network
	opts  Options
	ctx   context.Context
	queue []int
	head  int
	res   *Result
}

// BFS runs breadth-first search on net starting from index start,
// applying any number of functional Options.
// Returns ErrNetworkNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(net *core.Network, start int, opts ...Option) (*Result, error) {
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
	if !net.Contains(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}

	n := net.Len()
	w := &walker{
		net:   net,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unvisited
		w.res.Parent[i] = Unvisited
	}

	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue
// and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[w.head]
		w.head++
		d := w.res.Depth[v]
		w.opts.OnDequeue(v, d)

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		next := d + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.net.Neighbors(v) {
			if w.res.Depth[nbr] != Unvisited || !w.opts.FilterNeighbor(v, nbr) {
				continue
			}
			w.enqueue(nbr, next, v)
		}
	}

	return nil
}
