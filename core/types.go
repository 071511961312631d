// Package core defines the valve network model: the mutable, thread-safe
// Graph used while a network is being assembled, and the immutable,
// index-addressed Network the planners search over.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - an edge from a vertex to itself.
//	ErrNegativeRate      - a vertex rate below zero.
//	ErrDanglingNeighbor  - a definition references an undefined vertex.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Tunnels always
	// connect two distinct vertices.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeRate indicates a vertex rate below zero.
	ErrNegativeRate = errors.New("core: negative rate")

	// ErrDanglingNeighbor indicates that a vertex definition lists a
	// neighbor that is not itself defined.
	ErrDanglingNeighbor = errors.New("core: dangling neighbor reference")
)

// Vertex is a junction in the network.
//
// Rate is the value released per remaining minute once the vertex is
// activated. Passage vertices have Rate 0 and are never activated.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Rate is the non-negative flow rate of the valve at this vertex.
	Rate int64
}

// Edge is a unit-cost tunnel between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed reports whether the tunnel is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all new edges
// (true = one-way tunnels, false = two-way tunnels).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the mutable, in-memory valve network.
//
// muVert protects the vertices map; muEdgeAdj protects the edge catalog and
// adjacency. Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	directed bool

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[from][to] = edge ID; undirected edges are mirrored.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph. By default edges are undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}
