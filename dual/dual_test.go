package dual_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/valveplan/bitmask"
	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/dual"
	"github.com/katalvlaran/valveplan/internal/fixture"
	"github.com/katalvlaran/valveplan/route"
)

type DualSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *DualSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *DualSuite) prepare(defs map[string]core.Definition) *route.Instance {
	net := fixture.Network(defs)
	inst, err := route.Prepare(s.ctx, net, fixture.Index(net, "AA"))
	require.NoError(s.T(), err)

	return inst
}

// TestTriangle: one agent takes BB, the other CC, both arriving after one
// hop. A single agent with the same 26 minutes gets less.
func (s *DualSuite) TestTriangle() {
	inst := s.prepare(fixture.Triangle())
	const budget = 26

	res, err := dual.Optimize(s.ctx, inst, inst.Full(), budget, dual.DefaultOptions())
	require.NoError(s.T(), err)
	want := 13*int64(budget-2) + 2*int64(budget-2)
	require.Equal(s.T(), want, res.Value)
	require.EqualValues(s.T(), 360, res.Value)
	require.Equal(s.T(), 4, res.Subsets)

	single, err := route.Optimize(s.ctx, inst, inst.Full(), budget, route.DefaultOptions())
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 356, single.Value)
	require.Greater(s.T(), res.Value, single.Value)
}

func (s *DualSuite) TestCave() {
	inst := s.prepare(fixture.Cave())

	res, err := dual.Optimize(s.ctx, inst, inst.Full(), 26, dual.DefaultOptions())
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 1707, res.Value)
	require.Equal(s.T(), res.Value, res.Agents[0].Value+res.Agents[1].Value)

	// Splits are disjoint and histories stay within their side.
	require.Zero(s.T(), res.Split[0]&res.Split[1])
	net := inst.Network()
	for i, agent := range res.Agents {
		require.Equal(s.T(), "AA", net.ID(agent.History[0]))
		used, err := inst.MaskOf(agent.History[1:])
		require.NoError(s.T(), err)
		require.True(s.T(), used.SubsetOf(res.Split[i]))

		acts, err := route.Schedule(inst, agent.History, 26)
		require.NoError(s.T(), err)
		require.Equal(s.T(), agent.Value, route.Total(acts))
	}
	require.Positive(s.T(), res.Stats.Expanded)
}

// TestDominatesFixedSplits checks the combined optimum against every
// explicit partition of the cave valves.
func (s *DualSuite) TestDominatesFixedSplits() {
	inst := s.prepare(fixture.Cave())
	const budget = 18
	opts := dual.DefaultOptions()
	opts.PruneUnreachable = false

	res, err := dual.Optimize(s.ctx, inst, inst.Full(), budget, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1<<inst.Len(), res.Subsets)

	full := inst.Full()
	for m := bitmask.Mask(0); m <= full; m++ {
		a, err := route.Optimize(s.ctx, inst, m, budget, route.DefaultOptions())
		require.NoError(s.T(), err)
		b, err := route.Optimize(s.ctx, inst, m.Complement(full), budget, route.DefaultOptions())
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), res.Value, a.Value+b.Value, "split %v", m)
	}
}

func (s *DualSuite) TestAtLeastSingleAgent() {
	inst := s.prepare(fixture.Cave())
	for budget := 0; budget <= 20; budget += 4 {
		single, err := route.Optimize(s.ctx, inst, inst.Full(), budget, route.DefaultOptions())
		require.NoError(s.T(), err)
		both, err := dual.Optimize(s.ctx, inst, inst.Full(), budget, dual.DefaultOptions())
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), both.Value, single.Value, "budget=%d", budget)
	}
}

func (s *DualSuite) TestNoEligibleValves() {
	inst := s.prepare(fixture.Cave())

	res, err := dual.Optimize(s.ctx, inst, 0, 26, dual.DefaultOptions())
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Value)
	require.Equal(s.T(), 1, res.Subsets)
	for _, agent := range res.Agents {
		require.Equal(s.T(), []int{inst.Start()}, agent.History)
	}

	// Budget too short for anything: pruning empties the pool.
	res, err = dual.Optimize(s.ctx, inst, inst.Full(), 2, dual.DefaultOptions())
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Value)
}

func (s *DualSuite) TestPruneUnreachableShrinksTable() {
	inst := s.prepare(fixture.Cave())
	// Budget 6: HH (5 hops) cannot be opened in time.
	pruned, err := dual.Optimize(s.ctx, inst, inst.Full(), 6, dual.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1<<5, pruned.Subsets)

	opts := dual.DefaultOptions()
	opts.PruneUnreachable = false
	plain, err := dual.Optimize(s.ctx, inst, inst.Full(), 6, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1<<6, plain.Subsets)
	require.Equal(s.T(), plain.Value, pruned.Value)
}

func (s *DualSuite) TestSequentialMatchesParallel() {
	inst := s.prepare(fixture.Cave())
	one := dual.DefaultOptions()
	one.Workers = 1
	many := dual.DefaultOptions()
	many.Workers = 8

	a, err := dual.Optimize(s.ctx, inst, inst.Full(), 26, one)
	require.NoError(s.T(), err)
	b, err := dual.Optimize(s.ctx, inst, inst.Full(), 26, many)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Value, b.Value)
	require.Equal(s.T(), a.Split, b.Split)
	require.Equal(s.T(), a.Agents[0].History, b.Agents[0].History)
}

func (s *DualSuite) TestErrors() {
	inst := s.prepare(fixture.Cave())

	_, err := dual.Optimize(s.ctx, nil, 0, 26, dual.DefaultOptions())
	require.ErrorIs(s.T(), err, route.ErrNetworkNil)

	_, err = dual.Optimize(s.ctx, inst, bitmask.Of(40), 26, dual.DefaultOptions())
	require.ErrorIs(s.T(), err, route.ErrEligibleOutOfRange)

	bad := dual.DefaultOptions()
	bad.Workers = 0
	_, err = dual.Optimize(s.ctx, inst, inst.Full(), 26, bad)
	require.ErrorIs(s.T(), err, dual.ErrOptionViolation)

	small := dual.DefaultOptions()
	small.MaxValves = 3
	_, err = dual.Optimize(s.ctx, inst, inst.Full(), 26, small)
	require.ErrorIs(s.T(), err, dual.ErrTooManyValves)

	// A wide star: the limit is enforced before the subset table exists.
	star := map[string]core.Definition{"AA": {}}
	hub := star["AA"]
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("V%02d", i)
		star[id] = core.Definition{Rate: int64(i + 1), Neighbors: []string{"AA"}}
		hub.Neighbors = append(hub.Neighbors, id)
	}
	star["AA"] = hub
	wide := s.prepare(star)

	huge := dual.DefaultOptions()
	huge.MaxValves = 50
	_, err = dual.Optimize(s.ctx, wide, wide.Full(), 26, huge)
	require.ErrorIs(s.T(), err, dual.ErrOptionViolation)

	capped := dual.DefaultOptions()
	capped.MaxValves = dual.MaxSplitValves
	_, err = dual.Optimize(s.ctx, wide, wide.Full(), 26, capped)
	require.ErrorIs(s.T(), err, dual.ErrTooManyValves)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = dual.Optimize(ctx, inst, inst.Full(), 26, dual.DefaultOptions())
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestDualSuite(t *testing.T) {
	suite.Run(t, new(DualSuite))
}
