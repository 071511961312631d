// Package planner plans valve activations end to end.
//
// Plan takes a mutable core.Graph and a start vertex ID, validates the
// request, compiles the graph into a core.Network, computes the distance
// table for the start and every valve, and runs either the single-agent
// search (package route) or the dual-agent split (package dual). The
// answer is expressed in vertex IDs: per agent the activation history,
// the replayed schedule and the full walk through the tunnels.
//
// Each call gets a random run ID. Phases are logged at Debug and the
// summary at Info through the configured *slog.Logger (silent by
// default). An optional Observer receives a Report per call; package
// metrics provides a Prometheus-backed one.
//
//	res, err := planner.Plan(ctx, g, "AA",
//	    planner.WithAgents(2),
//	    planner.WithTimeBudget(26),
//	    planner.WithLogger(logger),
//	)
package planner
