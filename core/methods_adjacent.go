// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// NeighborIDs returns the IDs reachable from id through one tunnel,
// sorted ascending. For directed graphs only outgoing tunnels count.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency makes adjacency[id] non-nil. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
}

// removeAdjacency drops e (and its mirror) from the adjacency maps.
// Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	if inner, ok := g.adjacency[e.From]; ok && inner[e.To] == e.ID {
		delete(inner, e.To)
	}
	if e.Directed {
		return
	}
	if inner, ok := g.adjacency[e.To]; ok && inner[e.From] == e.ID {
		delete(inner, e.From)
	}
}
