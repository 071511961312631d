package route

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valveplan/bitmask"
	"github.com/katalvlaran/valveplan/core"
	"github.com/katalvlaran/valveplan/distance"
)

// Instance binds a network, its distance table and a start vertex into the
// dense form the search runs on. Valve bit k is the k-th positive-rate
// vertex in ascending network index. An Instance is immutable and safe for
// concurrent use by any number of searches.
type Instance struct {
	net       *core.Network
	start     int
	valves    []int   // bit → network index
	bitOf     map[int]int
	rates     []int64 // bit → rate
	startHops []int   // bit → hops from start
	hops      []int   // from*k + to → hops between valve bits
}

// NewInstance validates the inputs and flattens the distance rows the
// search needs. table must hold rows for start and every valve, and
// columns for every valve.
func NewInstance(net *core.Network, table *distance.Table, start int) (*Instance, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if !net.Contains(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}
	valves := net.Valves()
	k := len(valves)
	if k > bitmask.MaxBits {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, k, bitmask.MaxBits)
	}
	if table == nil {
		return nil, ErrMissingDistances
	}
	if k > 0 && !table.HasSource(start) {
		return nil, fmt.Errorf("%w: no row for start %d", ErrMissingDistances, start)
	}
	for _, v := range valves {
		if !table.HasSource(v) || !table.HasTarget(v) {
			return nil, fmt.Errorf("%w: valve %d", ErrMissingDistances, v)
		}
	}

	inst := &Instance{
		net:       net,
		start:     start,
		valves:    append([]int(nil), valves...),
		bitOf:     make(map[int]int, k),
		rates:     make([]int64, k),
		startHops: make([]int, k),
		hops:      make([]int, k*k),
	}
	for b, v := range valves {
		inst.bitOf[v] = b
		inst.rates[b] = net.Rate(v)
		inst.startHops[b] = table.Hops(start, v)
		for c, w := range valves {
			inst.hops[b*k+c] = table.Hops(v, w)
		}
	}

	return inst, nil
}

// Prepare computes the distance table for start and every valve of net
// and returns the resulting Instance.
func Prepare(ctx context.Context, net *core.Network, start int) (*Instance, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if !net.Contains(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}
	if n := len(net.Valves()); n > bitmask.MaxBits {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, n, bitmask.MaxBits)
	}
	sources := append([]int{start}, net.Valves()...)
	table, err := distance.Compute(ctx, net, sources)
	if err != nil {
		return nil, err
	}

	return NewInstance(net, table, start)
}

// Network returns the underlying network.
func (in *Instance) Network() *core.Network { return in.net }

// Start returns the network index of the start vertex.
func (in *Instance) Start() int { return in.start }

// Len returns the number of valves.
func (in *Instance) Len() int { return len(in.valves) }

// Valves returns the network index of every valve, indexed by bit.
func (in *Instance) Valves() []int { return append([]int(nil), in.valves...) }

// Full returns the mask holding every valve.
func (in *Instance) Full() bitmask.Mask { return bitmask.Full(len(in.valves)) }

// Valve returns the network index of valve bit b.
func (in *Instance) Valve(b int) int { return in.valves[b] }

// Rate returns the rate of valve bit b.
func (in *Instance) Rate(b int) int64 { return in.rates[b] }

// Bit returns the valve bit of network index v.
func (in *Instance) Bit(v int) (int, bool) {
	b, ok := in.bitOf[v]

	return b, ok
}

// StartHops returns the hop count from the start to valve bit b, or
// distance.Unreachable.
func (in *Instance) StartHops(b int) int { return in.startHops[b] }

// Hops returns the hop count between valve bits a and b, or
// distance.Unreachable.
func (in *Instance) Hops(a, b int) int { return in.hops[a*len(in.valves)+b] }

// Reachable returns the valves that can be activated from the start with
// at least one productive minute left: hops + 1 < budget.
func (in *Instance) Reachable(budget int) bitmask.Mask {
	var m bitmask.Mask
	for b, d := range in.startHops {
		if d != distance.Unreachable && d+1 < budget {
			m = m.With(b)
		}
	}

	return m
}

// MaskOf converts network indices into a valve mask.
func (in *Instance) MaskOf(vertices []int) (bitmask.Mask, error) {
	var m bitmask.Mask
	for _, v := range vertices {
		b, ok := in.bitOf[v]
		if !ok {
			return 0, fmt.Errorf("%w: vertex %d is not a valve", ErrEligibleOutOfRange, v)
		}
		m = m.With(b)
	}

	return m, nil
}
