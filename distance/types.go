// Package distance precomputes hop counts between the vertices that matter
// to the planners: every source row holds the BFS distance to every target.
package distance

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for distance computation.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("distance: network is nil")

	// ErrVertexOutOfRange is returned when a source or target index is not
	// a vertex of the network.
	ErrVertexOutOfRange = errors.New("distance: vertex index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Unreachable is the hop count reported for pairs with no connecting walk.
// It compares greater than any real distance.
const Unreachable = int(^uint32(0) >> 1)

// Option configures Compute.
type Option func(*Options)

// Options holds the tunables of Compute.
type Options struct {
	// Targets restricts the columns of the table. Nil means every
	// positive-rate vertex of the network.
	Targets []int

	// Workers bounds the number of BFS runs in flight.
	Workers int

	err error
}

// DefaultOptions returns Options with valve targets and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithTargets sets the target columns explicitly.
func WithTargets(targets []int) Option {
	return func(o *Options) {
		o.Targets = append([]int(nil), targets...)
	}
}

// WithWorkers bounds parallel BFS runs; n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
