// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p).

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveplan/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse adds each candidate tunnel independently with probability p.
// Pairs are visited in (i asc, j asc) order; for directed graphs every
// ordered pair i≠j is a candidate, otherwise only i<j. An RNG is required
// unless p is 0 or 1.
//
// Complexity: O(n) vertices + O(n²) coin flips.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			lo := i + 1
			if directed {
				lo = 0
			}
			for j := lo; j < n; j++ {
				if i == j || !flip(cfg, p) {
					continue
				}
				if err := addTunnel(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// flip reports a success with probability p; p of 0 or 1 needs no RNG.
func flip(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
