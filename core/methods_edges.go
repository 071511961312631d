// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID (numeric suffix) asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects from and to with a unit-cost tunnel and returns its ID.
// Missing endpoints are created with rate 0 (passage vertices). Adding a
// tunnel that already exists is a no-op returning the existing ID.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, short-circuit on an existing tunnel.
//  4. Generate eid atomically, store the Edge.
//  5. Record adjacency; mirror it for undirected graphs.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from, 0); err != nil {
		return "", err
	}
	if err := g.AddVertex(to, 0); err != nil {
		return "", err
	}

	directed := g.Directed()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if eid, ok := g.adjacency[from][to]; ok {
		return eid, nil
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Directed: directed}
	g.edges[eid] = e

	ensureAdjacency(g, from)
	g.adjacency[from][to] = eid
	if !directed {
		ensureAdjacency(g, to)
		g.adjacency[to][from] = eid
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror).
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether a tunnel leads from 'from' to 'to'.
// For undirected graphs HasEdge(a,b) == HasEdge(b,a).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns a snapshot of all edges sorted by creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of distinct tunnels (mirrors are not counted).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID. Caller holds muEdgeAdj.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric part of an edge ID for ordering.
func edgeSeq(eid string) uint64 {
	if len(eid) < 2 {
		return 0
	}
	n, err := strconv.ParseUint(eid[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
