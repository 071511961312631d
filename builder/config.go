// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig holds the knobs shared by all constructors.
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand
	rateFn RateFn

	// rateEvery > 1 leaves all vertices but every rateEvery-th as passages.
	rateEvery int
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      CaveIDFn,
		rateFn:    ConstantRate(0),
		rateEvery: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rateOf returns the rate of vertex idx under the configured policy.
func (c builderConfig) rateOf(idx int) int64 {
	if c.rateEvery > 1 && idx%c.rateEvery != c.rateEvery-1 {
		return 0
	}

	return c.rateFn(idx, c.rng)
}
