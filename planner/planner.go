// Package planner is the entry point for planning valve activations on a
// core.Graph: it validates the request, compiles the network, builds the
// distance oracle and dispatches to the single-agent or dual-agent search.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/dual"
	"github.com/katalvlaran/valveplan/route"
)

// Plan computes the best activation plan for the agents starting at start.
//
// All inputs are validated before any search runs. With one agent the
// budget is the whole scenario; with two it is per agent. When a
// single-agent search hits its time limit the best plan found so far is
// returned together with route.ErrTimeLimit.
//
// Errors: ErrGraphNil, ErrStartNotFound, ErrOptionViolation, and errors
// from the route and dual packages or ctx.
func Plan(ctx context.Context, g *core.Graph, start string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !o.budgetSet {
		o.Budget = DefaultSoloBudget
		if o.Agents == 2 {
			o.Budget = DefaultDualBudget
		}
	}

	p := &run{
		id:    uuid.NewString(),
		opts:  o,
		log:   o.Logger,
		began: time.Now(),
	}
	p.log = p.log.With("run_id", p.id)

	res, err := p.plan(ctx, g, start)
	p.report(res, err)

	return res, err
}

// run carries the state of one Plan call.
type run struct {
	id     string
	opts   Options
	log    *slog.Logger
	began  time.Time
	valves int
}

func (p *run) plan(ctx context.Context, g *core.Graph, start string) (*Result, error) {
	net := g.Compile()
	from, _ := net.Index(start)
	p.valves = len(net.Valves())
	p.log.Debug("network compiled", "vertices", net.Len(), "valves", p.valves)

	inst, err := route.Prepare(ctx, net, from)
	if err != nil {
		return nil, err
	}
	p.log.Debug("distance table ready", "sources", inst.Len()+1)

	search := route.Options{
		Frontier:      p.opts.Frontier,
		Bound:         p.opts.Bound,
		RecordHistory: true,
		TimeLimit:     p.opts.TimeLimit,
	}
	res := &Result{RunID: p.id, Start: start, Budget: p.opts.Budget}

	switch p.opts.Agents {
	case 2:
		dopts := dual.Options{
			MaxValves:        p.opts.MaxDualValves,
			Workers:          p.opts.Workers,
			PruneUnreachable: true,
			Search:           search,
		}
		out, err := dual.Optimize(ctx, inst, inst.Full(), p.opts.Budget, dopts)
		if err != nil {
			return nil, err
		}
		p.log.Debug("split chosen", "subsets", out.Subsets, "first", out.Split[0].String(), "second", out.Split[1].String())
		res.Value = out.Value
		res.Stats = out.Stats
		for _, agent := range out.Agents {
			ap, err := describe(inst, agent, p.opts.Budget)
			if err != nil {
				return nil, err
			}
			res.Agents = append(res.Agents, ap)
		}
	default:
		out, err := route.Optimize(ctx, inst, inst.Full(), p.opts.Budget, search)
		if err != nil && !errors.Is(err, route.ErrTimeLimit) {
			return nil, err
		}
		ap, derr := describe(inst, out, p.opts.Budget)
		if derr != nil {
			return nil, derr
		}
		res.Value = out.Value
		res.Stats = out.Stats
		res.Agents = []AgentPlan{ap}
		if err != nil {
			res.Elapsed = time.Since(p.began)
			p.log.Warn("search stopped early", "error", err, "value", res.Value)
			return res, err
		}
	}
	res.Elapsed = time.Since(p.began)

	return res, nil
}

// report logs the run summary and notifies the observer.
func (p *run) report(res *Result, err error) {
	rep := Report{
		RunID:   p.id,
		Agents:  p.opts.Agents,
		Valves:  p.valves,
		Elapsed: time.Since(p.began),
		Err:     err,
	}
	if res != nil {
		rep.Value = res.Value
		rep.Stats = res.Stats
	}
	if err != nil {
		p.log.Error("plan failed", "agents", rep.Agents, "error", err)
	} else {
		p.log.Info("plan complete",
			"agents", rep.Agents,
			"valves", rep.Valves,
			"value", rep.Value,
			"expanded", rep.Stats.Expanded,
			"pruned", rep.Stats.Pruned,
			"elapsed", rep.Elapsed,
		)
	}
	if p.opts.Observer != nil {
		p.opts.Observer.ObservePlan(rep)
	}
}
