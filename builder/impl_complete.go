// SPDX-License-Identifier: MIT
// Package: valveplan/builder
//
// impl_complete.go - complete graph K_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveplan/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete connects every pair of n vertices (n ≥ 1). In a directed
// graph both orientations are added.
// Complexity: O(n) vertices + O(n²) tunnels.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addTunnel(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
				if directed {
					if err := addTunnel(g, cfg, methodComplete, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
