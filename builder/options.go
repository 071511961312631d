// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// options.go - functional options for BuildGraph.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. It panics on nil, as a
// programmer error.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand sets an explicit RNG. It panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a private RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRateFn sets the vertex rate generator. It panics on nil.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}

	return func(c *builderConfig) { c.rateFn = fn }
}

// WithRateEvery makes only every k-th vertex (indices k-1, 2k-1, ...) a
// valve; the rest are passages. k < 1 panics.
func WithRateEvery(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithRateEvery(k<1)")
	}

	return func(c *builderConfig) { c.rateEvery = k }
}
