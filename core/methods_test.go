// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveplan/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex("", 1), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddVertex("A", -1), core.ErrNegativeRate)

	require.NoError(t, g.AddVertex("A", 5))
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))

	// Duplicate insert keeps the original rate.
	require.NoError(t, g.AddVertex("A", 9))
	rate, err := g.Rate("A")
	require.NoError(t, err)
	require.EqualValues(t, 5, rate)
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex("missing"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	require.False(t, g.HasVertex("A"))
}

func TestGraph_SetRate(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.SetRate("A", 3), core.ErrVertexNotFound)
	require.NoError(t, g.AddVertex("A", 0))
	require.ErrorIs(t, g.SetRate("A", -3), core.ErrNegativeRate)
	require.NoError(t, g.SetRate("A", 3))

	rate, err := g.Rate("A")
	require.NoError(t, err)
	require.EqualValues(t, 3, rate)

	_, err = g.Rate("B")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Equal(t, []string{"A"}, g.Valves())
}

func TestGraph_AddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "A")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.Equal(t, "e1", eid)

	// Endpoints are created as passage vertices.
	rate, err := g.Rate("B")
	require.NoError(t, err)
	require.Zero(t, rate)

	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))

	// The mirror counts as the same tunnel.
	again, err := g.AddEdge("B", "A")
	require.NoError(t, err)
	require.Equal(t, eid, again)
	require.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.True(t, g.Directed())

	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))

	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Empty(t, nbrs)
}

func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	require.ErrorIs(t, g.RemoveEdge("e99"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge(e1))
	require.False(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))

	require.NoError(t, g.RemoveVertex("C"))
	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Empty(t, nbrs)
	require.Zero(t, g.EdgeCount())
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("D", "A")
	_, _ = g.AddEdge("D", "C")
	_, _ = g.AddEdge("D", "B")

	require.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	nbrs, err := g.NeighborIDs("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, nbrs)

	_, err = g.NeighborIDs("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.NeighborIDs("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	edges := g.Edges()
	require.Len(t, edges, 3)
	require.Equal(t, []string{"e1", "e2", "e3"}, []string{edges[0].ID, edges[1].ID, edges[2].ID})
	require.Equal(t, "A", edges[0].To)
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 4))
	_, _ = g.AddEdge("A", "B")

	c := g.Clone()
	require.NoError(t, c.SetRate("A", 7))
	eid, err := c.AddEdge("B", "C")
	require.NoError(t, err)
	require.Equal(t, "e2", eid, "clone continues the edge ID sequence")

	rate, _ := g.Rate("A")
	require.EqualValues(t, 4, rate, "source graph untouched")
	require.False(t, g.HasVertex("C"))
	require.True(t, c.HasEdge("A", "B"))
}
