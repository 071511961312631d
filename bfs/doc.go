// Package bfs provides breadth-first search over a compiled core.Network,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start index.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop count per index (Unvisited when not reached)
//   - Parent: predecessor per index in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual tunnels via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	Every tunnel costs one minute, so hop count is travel time. The distance
//	package runs one BFS per source to fill its table, and the planner uses
//	PathTo to expand jumps between valves into vertex-by-vertex walks.
//
// Determinism
//
//	core.Network keeps each adjacency row ascending, and BFS enqueues
//	neighbors in that order, so the visit sequence and the parent tree are
//	fully reproducible.
//
// Complexity (V = vertices, E = tunnels)
//
//   - Time:   O(V + E)
//   - Memory: O(V) (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(net, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	if err != nil {
//	    // ErrNetworkNil, ErrStartOutOfRange, ErrOptionViolation,
//	    // ctx.Err(), or a wrapped OnVisit error
//	}
//	path, err := res.PathTo(dest)
//
// Errors
//
//   - ErrNetworkNil       if the network pointer is nil.
//   - ErrStartOutOfRange  if start is not a valid index.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from PathTo when dest was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
