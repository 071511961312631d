// File: view.go
// Role: Non-mutating graph views (copying topology with altered properties).
// Determinism:
//   - Preserves vertex/edge IDs and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph holding only the vertices in keep and
// the tunnels whose endpoints are both kept. Edge IDs are preserved and the
// edge ID counter is carried over so later AddEdge calls cannot collide.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(WithDirected(g.Directed()))

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Rate: v.Rate}
			out.adjacency[id] = make(map[string]string)
		}
	}
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := *e
		out.edges[eid] = &ne
		out.adjacency[ne.From][ne.To] = eid
		if !ne.Directed {
			out.adjacency[ne.To][ne.From] = eid
		}
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}

// PassageView returns a copy of g in which every listed vertex has rate 0,
// turning those valves into plain passages. Unknown IDs are ignored.
//
// Complexity: O(V + E).
func PassageView(g *Graph, ids ...string) *Graph {
	out := g.Clone()
	for _, id := range ids {
		if v, ok := out.vertices[id]; ok {
			v.Rate = 0
		}
	}

	return out
}
