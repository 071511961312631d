// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Rate: v.Rate}
		clone.adjacency[id] = make(map[string]string, len(g.adjacency[id]))
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
	}
	for from, inner := range g.adjacency {
		for to, eid := range inner {
			clone.adjacency[from][to] = eid
		}
	}

	return clone
}
