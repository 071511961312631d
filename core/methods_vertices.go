// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/SetRate/Rate/HasVertex/
//       RemoveVertex/Vertices/VertexCount/Valves.
// Determinism:
//   - Vertices() and Valves() return IDs sorted lexicographically.
// Concurrency:
//   - Vertex catalog under muVert; adjacency bootstrap under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex with the given rate.
// If the vertex already exists its rate is left untouched (idempotent);
// use SetRate to change it.
//
// Errors: ErrEmptyVertexID, ErrNegativeRate.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, rate int64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if rate < 0 {
		return ErrNegativeRate
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Rate: rate}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// SetRate replaces the rate of an existing vertex.
//
// Errors: ErrEmptyVertexID, ErrNegativeRate, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) SetRate(id string, rate int64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if rate < 0 {
		return ErrNegativeRate
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Rate = rate

	return nil
}

// Rate returns the rate of vertex id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Rate(id string) (int64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return v.Rate, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every incident edge.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(E) for the incident-edge scan.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Valves returns the IDs of all vertices with a positive rate, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Valves() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id, v := range g.vertices {
		if v.Rate > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}
