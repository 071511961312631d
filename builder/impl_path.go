// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// impl_path.go - path P_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveplan/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the corridor 0 — 1 — … — n-1 (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) tunnels.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addTunnel(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
