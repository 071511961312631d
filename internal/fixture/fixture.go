// Package fixture holds the reference networks shared by the test suites.
package fixture

import "github.com/katalvlaran/valveplan/core"

// Triangle is AA(0), BB(13), CC(2), pairwise connected.
func Triangle() map[string]core.Definition {
	return map[string]core.Definition{
		"AA": {Rate: 0, Neighbors: []string{"BB", "CC"}},
		"BB": {Rate: 13, Neighbors: []string{"AA", "CC"}},
		"CC": {Rate: 2, Neighbors: []string{"AA", "BB"}},
	}
}

// Cave is the ten-vertex, six-valve network used as the worked example
// throughout the documentation. From AA with 30 minutes one agent releases
// 1651; two agents with 26 minutes each release 1707.
func Cave() map[string]core.Definition {
	return map[string]core.Definition{
		"AA": {Rate: 0, Neighbors: []string{"DD", "II", "BB"}},
		"BB": {Rate: 13, Neighbors: []string{"CC", "AA"}},
		"CC": {Rate: 2, Neighbors: []string{"DD", "BB"}},
		"DD": {Rate: 20, Neighbors: []string{"CC", "AA", "EE"}},
		"EE": {Rate: 3, Neighbors: []string{"FF", "DD"}},
		"FF": {Rate: 0, Neighbors: []string{"EE", "GG"}},
		"GG": {Rate: 0, Neighbors: []string{"FF", "HH"}},
		"HH": {Rate: 22, Neighbors: []string{"GG"}},
		"II": {Rate: 0, Neighbors: []string{"AA", "JJ"}},
		"JJ": {Rate: 21, Neighbors: []string{"II"}},
	}
}

// Network compiles defs, panicking on malformed input.
func Network(defs map[string]core.Definition) *core.Network {
	g, err := core.FromDefinitions(defs)
	if err != nil {
		panic(err)
	}

	return g.Compile()
}

// Index returns the arena index of id, panicking when absent.
func Index(net *core.Network, id string) int {
	i, ok := net.Index(id)
	if !ok {
		panic("fixture: unknown vertex " + id)
	}

	return i
}
