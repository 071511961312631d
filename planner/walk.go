package planner

import (
	"fmt"

	"github.com/katalvlaran/valveplan/bfs"
	"github.com/katalvlaran/valveplan/route"
)

// describe resolves a search result into IDs, replays its schedule and
// expands the history into a full walk.
func describe(inst *route.Instance, r route.Result, budget int) (AgentPlan, error) {
	net := inst.Network()
	acts, err := route.Schedule(inst, r.History, budget)
	if err != nil {
		return AgentPlan{}, err
	}
	walk, err := expandWalk(inst, r.History)
	if err != nil {
		return AgentPlan{}, err
	}

	ap := AgentPlan{
		Value:       r.Value,
		History:     net.IDs(r.History),
		Activations: make([]Activation, len(acts)),
		Walk:        net.IDs(walk),
	}
	for i, a := range acts {
		ap.Activations[i] = Activation{
			Valve:    net.ID(a.Valve),
			Minute:   a.Minute,
			Left:     a.Left,
			Released: a.Released,
		}
	}

	return ap, nil
}

// expandWalk joins the shortest paths between consecutive history entries.
func expandWalk(inst *route.Instance, history []int) ([]int, error) {
	if len(history) == 0 {
		return nil, nil
	}
	net := inst.Network()
	walk := []int{history[0]}
	for i := 1; i < len(history); i++ {
		res, err := bfs.BFS(net, history[i-1])
		if err != nil {
			return nil, err
		}
		leg, err := res.PathTo(history[i])
		if err != nil {
			return nil, fmt.Errorf("planner: walk leg %d: %w", i, err)
		}
		walk = append(walk, leg[1:]...)
	}

	return walk, nil
}
