// Package builder assembles deterministic valve networks for tests,
// benchmarks and the command line's synthetic mode.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph and apply
//     constructors in order.
//   - Topologies (Constructor):
//     – Path(n), Cycle(n), Complete(n), RandomSparse(n, p).
//   - Vertex-ID schemes (IDFn):
//     – CaveIDFn (default): "AA", "AB", …; index 0 is the conventional start.
//     – DefaultIDFn: decimal strings. SymbolNumberIDFn(prefix): "V0", "V1", …
//   - Rate distributions (RateFn):
//     – ConstantRate(r) (default r = 0), UniformRate(lo, hi), IndexRate(step).
//     – WithRateEvery(k) keeps only every k-th vertex as a valve.
//
// Guarantees:
//
//   - Composable: constructors skip vertices and tunnels that already exist,
//     so a vertex keeps the rate of the constructor that created it.
//   - Deterministic: same options, seed and constructor order ⇒ same graph.
//   - Never panics at build time; invalid option values panic when the
//     option is created (programmer errors).
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{
//	        builder.WithSeed(42),
//	        builder.WithRateFn(builder.UniformRate(1, 25)),
//	        builder.WithRateEvery(3),
//	    },
//	    builder.Path(30),
//	    builder.RandomSparse(30, 0.05),
//	)
package builder
