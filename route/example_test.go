package route_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/route"
)

// ExampleOptimize plans the three-vertex triangle for 30 minutes and
// replays the winning history.
func ExampleOptimize() {
	g, _ := core.FromDefinitions(map[string]core.Definition{
		"AA": {Rate: 0, Neighbors: []string{"BB", "CC"}},
		"BB": {Rate: 13, Neighbors: []string{"AA", "CC"}},
		"CC": {Rate: 2, Neighbors: []string{"AA", "BB"}},
	})
	net := g.Compile()
	start, _ := net.Index("AA")

	ctx := context.Background()
	inst, err := route.Prepare(ctx, net, start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := route.Optimize(ctx, inst, inst.Full(), 30, route.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Value, net.IDs(res.History))

	acts, _ := route.Schedule(inst, res.History, 30)
	for _, a := range acts {
		fmt.Printf("%s open after %d min, releases %d\n", net.ID(a.Valve), a.Minute, a.Released)
	}
	// Output:
	// 416 [AA BB CC]
	// BB open after 2 min, releases 364
	// CC open after 4 min, releases 52
}
