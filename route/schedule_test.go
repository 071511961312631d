package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveplan/internal/fixture"
	"github.com/katalvlaran/valveplan/route"
)

func TestSchedule(t *testing.T) {
	inst := prepare(t, fixture.Triangle())
	net := inst.Network()
	aa, bb, cc := fixture.Index(net, "AA"), fixture.Index(net, "BB"), fixture.Index(net, "CC")

	acts, err := route.Schedule(inst, []int{aa, bb, cc}, 30)
	require.NoError(t, err)
	require.Equal(t, []route.Activation{
		{Valve: bb, Minute: 2, Left: 28, Released: 364},
		{Valve: cc, Minute: 4, Left: 26, Released: 52},
	}, acts)
	require.EqualValues(t, 416, route.Total(acts))

	acts, err = route.Schedule(inst, []int{aa}, 30)
	require.NoError(t, err)
	require.Empty(t, acts)
}

func TestSchedule_Infeasible(t *testing.T) {
	inst := prepare(t, fixture.Triangle())
	net := inst.Network()
	aa, bb, cc := fixture.Index(net, "AA"), fixture.Index(net, "BB"), fixture.Index(net, "CC")

	tests := []struct {
		name    string
		history []int
		budget  int
	}{
		{"empty", nil, 30},
		{"wrong start", []int{bb, cc}, 30},
		{"passage vertex", []int{aa, aa}, 30},
		{"repeat", []int{aa, bb, bb}, 30},
		{"out of time", []int{aa, bb, cc}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := route.Schedule(inst, tc.history, tc.budget)
			require.ErrorIs(t, err, route.ErrInfeasibleHistory)
		})
	}

	_, err := route.Schedule(nil, []int{aa}, 30)
	require.ErrorIs(t, err, route.ErrNetworkNil)
}
