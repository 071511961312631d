// Package core provides the valve network model used by every planner in
// this module.
//
// Two representations are offered:
//
//   - Graph: mutable, thread-safe, string-addressed. Build it vertex by
//     vertex (AddVertex, AddEdge) or in one shot from an input adapter's
//     "id → (rate, neighbors)" mapping (FromDefinitions).
//   - Network: immutable arena produced by Graph.Compile. Each vertex owns
//     a stable integer index (ascending ID order); rates and adjacency are
//     flat slices addressed by that index, so search states compare and
//     hash as plain integers and bit sets rather than object graphs.
//
// Vertices carry a non-negative Rate. Rate 0 marks a passage vertex that
// only contributes travel time; positive-rate vertices are valves.
// Tunnels have unit cost. Graphs are undirected unless WithDirected(true)
// is given.
//
// Quick ASCII example:
//
//	AA(0) ─── BB(13)
//	   \       /
//	    CC(2)─
//
//	g := core.NewGraph()
//	_ = g.AddVertex("BB", 13)
//	_ = g.AddVertex("CC", 2)
//	_, _ = g.AddEdge("AA", "BB")
//	_, _ = g.AddEdge("BB", "CC")
//	_, _ = g.AddEdge("AA", "CC")
//	net := g.Compile()
//
// Concurrency:
//
//	Graph uses two RWMutexes (muVert, muEdgeAdj), always acquired in that
//	order. Network is read-only after Compile.
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrLoopNotAllowed,
//	ErrNegativeRate, ErrDanglingNeighbor. Branch with errors.Is.
package core
