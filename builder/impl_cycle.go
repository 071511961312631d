// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// impl_cycle.go - cycle C_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveplan/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the ring 0 — 1 — … — n-1 — 0 (n ≥ 3).
// Complexity: O(n) vertices + O(n) tunnels.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addTunnel(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
