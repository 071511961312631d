package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveplan/core"
)

func TestCompile_Indices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("CC", 2))
	require.NoError(t, g.AddVertex("BB", 13))
	_, _ = g.AddEdge("AA", "BB")
	_, _ = g.AddEdge("BB", "CC")
	_, _ = g.AddEdge("AA", "CC")

	net := g.Compile()
	require.Equal(t, 3, net.Len())
	require.False(t, net.Directed())

	aa, ok := net.Index("AA")
	require.True(t, ok)
	require.Equal(t, 0, aa)
	require.Equal(t, "BB", net.ID(1))
	require.EqualValues(t, 13, net.Rate(1))
	require.Equal(t, []int{1, 2}, net.Valves())
	require.Equal(t, []int{1, 2}, net.Neighbors(aa))
	require.Equal(t, []string{"BB", "CC"}, net.IDs(net.Valves()))

	_, ok = net.Index("ZZ")
	require.False(t, ok)
	require.True(t, net.Contains(2))
	require.False(t, net.Contains(3))
	require.False(t, net.Contains(-1))
}

func TestCompile_SnapshotIsolation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	net := g.Compile()

	_, _ = g.AddEdge("B", "A")
	require.NoError(t, g.SetRate("A", 5))

	require.True(t, net.Directed())
	require.Empty(t, net.Neighbors(1), "later mutations do not leak into the snapshot")
	require.Zero(t, net.Rate(0))
	require.Empty(t, net.Valves())
}
