// File: network.go
// Role: Immutable arena snapshot of a Graph. Every vertex gets a stable
//       integer index (ascending ID order); rates and adjacency are stored
//       in flat slices addressed by that index.
// Determinism:
//   - Index order is lexicographic by ID; Neighbors(i) is ascending.
// Concurrency:
//   - A Network is never mutated after Compile and is safe for concurrent reads.

package core

// Network is the read-only, index-addressed form of a Graph used by the
// search packages. It holds no references back to the Graph.
type Network struct {
	ids      []string
	index    map[string]int
	rates    []int64
	adj      [][]int
	valves   []int
	directed bool
}

// Compile snapshots g into a Network.
// Complexity: O(V log V + E).
func (g *Graph) Compile() *Network {
	ids := g.Vertices()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := len(ids)
	net := &Network{
		ids:      ids,
		index:    make(map[string]int, n),
		rates:    make([]int64, n),
		adj:      make([][]int, n),
		directed: g.directed,
	}
	for i, id := range ids {
		net.index[id] = i
	}
	for i, id := range ids {
		if v, ok := g.vertices[id]; ok {
			net.rates[i] = v.Rate
		}
		if net.rates[i] > 0 {
			net.valves = append(net.valves, i)
		}
		row := make([]int, 0, len(g.adjacency[id]))
		for to := range g.adjacency[id] {
			if j, ok := net.index[to]; ok {
				row = append(row, j)
			}
		}
		insertionSort(row)
		net.adj[i] = row
	}

	return net
}

// Len returns the number of vertices.
func (n *Network) Len() int { return len(n.ids) }

// Directed reports whether tunnels are one-way.
func (n *Network) Directed() bool { return n.directed }

// Index returns the arena index of id.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]

	return i, ok
}

// ID returns the vertex ID stored at index i.
// It panics if i is out of range, like a slice access.
func (n *Network) ID(i int) string { return n.ids[i] }

// Rate returns the rate of vertex i.
func (n *Network) Rate(i int) int64 { return n.rates[i] }

// Neighbors returns the indices one tunnel away from i, ascending.
// The returned slice is shared; callers must not modify it.
func (n *Network) Neighbors(i int) []int { return n.adj[i] }

// Valves returns the indices of all positive-rate vertices, ascending.
// The returned slice is shared; callers must not modify it.
func (n *Network) Valves() []int { return n.valves }

// Contains reports whether i is a valid index.
func (n *Network) Contains(i int) bool { return i >= 0 && i < len(n.ids) }

// IDs maps a slice of indices back to vertex IDs.
func (n *Network) IDs(idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = n.ids[i]
	}

	return out
}

// insertionSort orders small neighbor rows in place.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
