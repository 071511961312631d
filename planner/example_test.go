package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/planner"
)

// ExamplePlan splits the triangle between two agents.
func ExamplePlan() {
	g, _ := core.FromDefinitions(map[string]core.Definition{
		"AA": {Rate: 0, Neighbors: []string{"BB", "CC"}},
		"BB": {Rate: 13, Neighbors: []string{"AA", "CC"}},
		"CC": {Rate: 2, Neighbors: []string{"AA", "BB"}},
	})

	res, err := planner.Plan(context.Background(), g, "AA",
		planner.WithAgents(2),
		planner.WithTimeBudget(26),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total:", res.Value)
	for i, a := range res.Agents {
		fmt.Printf("agent %d: %v → %d\n", i+1, a.Walk, a.Value)
	}
	// Output:
	// total: 360
	// agent 1: [AA BB] → 312
	// agent 2: [AA CC] → 48
}
