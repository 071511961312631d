// File: definitions.go
// Role: Boundary constructor from the plain "id → (rate, neighbors)" mapping
//       produced by external parsers and scenario files.

package core

import (
	"fmt"
	"sort"
)

// Definition describes one vertex as handed over by an input adapter.
type Definition struct {
	// Rate is the non-negative flow rate of the vertex.
	Rate int64

	// Neighbors lists the IDs one tunnel away. Every entry must itself
	// be a key of the definitions map.
	Neighbors []string
}

// FromDefinitions builds a Graph from defs. Vertices are added in
// ascending ID order first, then tunnels, so the resulting edge IDs are
// deterministic for a given input.
//
// Errors:
//   - ErrEmptyVertexID if any key or neighbor is "".
//   - ErrNegativeRate if any rate is below zero.
//   - ErrDanglingNeighbor if a neighbor is not defined.
//   - ErrLoopNotAllowed if a vertex lists itself.
//
// Complexity: O(V log V + E).
func FromDefinitions(defs map[string]Definition, opts ...GraphOption) (*Graph, error) {
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := NewGraph(opts...)
	var (
		id  string
		err error
	)
	for _, id = range ids {
		if err = g.AddVertex(id, defs[id].Rate); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", id, err)
		}
	}
	for _, id = range ids {
		for _, nbr := range defs[id].Neighbors {
			if nbr == "" {
				return nil, fmt.Errorf("vertex %q: %w", id, ErrEmptyVertexID)
			}
			if _, ok := defs[nbr]; !ok {
				return nil, fmt.Errorf("%w: %q → %q", ErrDanglingNeighbor, id, nbr)
			}
			if _, err = g.AddEdge(id, nbr); err != nil {
				return nil, fmt.Errorf("tunnel %q → %q: %w", id, nbr, err)
			}
		}
	}

	return g, nil
}
