// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// rate_fn.go - vertex rate distributions.

package builder

import "math/rand"

// RateFn returns the rate of vertex idx. rng may be nil when no seed was
// configured; deterministic functions ignore it.
type RateFn func(idx int, rng *rand.Rand) int64

// ConstantRate gives every vertex the same rate.
func ConstantRate(r int64) RateFn {
	return func(int, *rand.Rand) int64 { return r }
}

// UniformRate draws rates uniformly from [lo, hi]. Without an RNG it
// returns lo.
func UniformRate(lo, hi int64) RateFn {
	if hi < lo {
		lo, hi = hi, lo
	}

	return func(_ int, rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// IndexRate returns idx*step, a deterministic ramp useful in benchmarks.
func IndexRate(step int64) RateFn {
	return func(idx int, _ *rand.Rand) int64 { return int64(idx) * step }
}
