// Package valveplan plans valve activations in a tunnel network so that the
// total pressure released before a deadline is as large as possible.
//
// 🚀 What is valveplan?
//
//	A thread-safe graph model and a small stack of planners:
//		• Network model: valves with flow rates joined by unit-length tunnels
//		• Traversal: hooked BFS with depth limits and neighbor filters
//		• Distance oracle: all-pairs hop counts between interesting vertices
//		• Single agent: best-first branch-and-bound with an admissible bound
//		• Two agents: exhaustive bitmask split of the valve set
//
// Everything is organized under these subpackages:
//
//	core/      — Graph, Vertex, Edge and the immutable index-addressed Network
//	bfs/       — breadth-first traversal over a Network
//	distance/  — concurrent hop-count table built from BFS runs
//	bitmask/   — 64-bit valve subsets
//	route/     — Instance preparation, Optimize and Schedule for one agent
//	dual/      — split search that hands disjoint valve sets to two agents
//	planner/   — end-to-end Plan with logging, run IDs and observers
//	scenario/  — strict YAML scenario files
//	metrics/   — Prometheus collector for planner runs
//	builder/   — deterministic synthetic networks for tests and benchmarks
//	cmd/valveplan — command-line front end
//
// Quick ASCII example:
//
//	AA(0) ─── BB(13)
//	   \       /
//	    CC(2)─
//
// One agent starting at AA with 30 minutes opens BB at minute 2 and CC at
// minute 4 for 13·28 + 2·26 = 416.
//
//	go install github.com/katalvlaran/valveplan/cmd/valveplan@latest
package valveplan
