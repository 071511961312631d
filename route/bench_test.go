package route_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/valveplan/internal/fixture"
	"github.com/katalvlaran/valveplan/route"
)

func BenchmarkOptimize_Cave(b *testing.B) {
	inst := prepare(b, fixture.Cave())
	ctx := context.Background()
	opts := route.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = route.Optimize(ctx, inst, inst.Full(), 30, opts)
	}
}

// BenchmarkOptimize_Random20 runs the search on a 20-vertex random network
// with roughly 13 valves, comparing both frontiers.
func BenchmarkOptimize_Random20(b *testing.B) {
	inst := randomInstance(b, 5, 20, 0.2)
	ctx := context.Background()
	for _, fr := range []route.Frontier{route.FrontierBestFirst, route.FrontierDepthFirst} {
		opts := route.DefaultOptions()
		opts.Frontier = fr
		opts.RecordHistory = false
		b.Run(fr.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = route.Optimize(ctx, inst, inst.Full(), 30, opts)
			}
		})
	}
}
