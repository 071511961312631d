// Package route plans the activation order of valves for a single agent.
//
// An agent starts at a vertex with a budget of minutes. Walking a tunnel
// costs one minute and opening a valve costs one more; once open, a valve
// releases its rate every remaining minute. Optimize finds the order that
// maximizes the total release over a chosen subset of valves (the eligible
// mask) and returns it as a history of network indices.
//
// Instance is the shared, read-only input of every search: the compiled
// network, the start vertex and the hop counts between start and valves,
// flattened into dense slices. Build it with NewInstance from an existing
// distance.Table, or with Prepare, which computes the table itself.
//
// Usage:
//
//	inst, err := route.Prepare(ctx, net, start)
//	res, err := route.Optimize(ctx, inst, inst.Full(), 30, route.DefaultOptions())
//	acts, err := route.Schedule(inst, res.History, 30)
//
// Errors:
//
//	ErrNetworkNil, ErrTooManyValves, ErrStartOutOfRange, ErrMissingDistances,
//	ErrEligibleOutOfRange, ErrOptionViolation, ErrTimeLimit,
//	ErrInfeasibleHistory.
package route
