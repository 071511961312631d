package route_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveplan/bitmask"
	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/distance"
	"github.com/katalvlaran/valveplan/internal/fixture"
	"github.com/katalvlaran/valveplan/route"
)

// prepare compiles defs and binds an instance starting at AA.
func prepare(t testing.TB, defs map[string]core.Definition) *route.Instance {
	t.Helper()
	net := fixture.Network(defs)
	inst, err := route.Prepare(context.Background(), net, fixture.Index(net, "AA"))
	require.NoError(t, err)

	return inst
}

// randomInstance builds a seeded random network of n vertices; vertex
// "AA" is the start. About a third of the vertices are passages.
func randomInstance(t testing.TB, seed int64, n int, p float64) *route.Instance {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	ids := make([]string, n)
	ids[0] = "AA"
	for i := 1; i < n; i++ {
		ids[i] = fmt.Sprintf("V%02d", i)
	}
	require.NoError(t, g.AddVertex("AA", 0))
	for i := 1; i < n; i++ {
		var rate int64
		if rng.Intn(3) > 0 {
			rate = 1 + rng.Int63n(25)
		}
		require.NoError(t, g.AddVertex(ids[i], rate))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_, err := g.AddEdge(ids[i], ids[j])
				require.NoError(t, err)
			}
		}
	}
	net := g.Compile()
	inst, err := route.Prepare(context.Background(), net, fixture.Index(net, "AA"))
	require.NoError(t, err)

	return inst
}

// brute returns the best release reachable from (cur, rem, left) by trying
// every activation order.
func brute(inst *route.Instance, cur int, rem bitmask.Mask, left int) int64 {
	var best int64
	rem.Each(func(b int) {
		d := hops(inst, cur, b)
		if d == distance.Unreachable || d+1 >= left {
			return
		}
		l := left - d - 1
		if v := inst.Rate(b)*int64(l) + brute(inst, b, rem.Without(b), l); v > best {
			best = v
		}
	})

	return best
}

func hops(inst *route.Instance, cur, b int) int {
	if cur == route.AtStart {
		return inst.StartHops(b)
	}

	return inst.Hops(cur, b)
}
