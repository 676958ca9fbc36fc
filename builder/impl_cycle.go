// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_cycle.go - simple cycle C_n.
//
// Determinism:
//   • Vertices 0..n-1; edges (i, i+1) for i asc, then the closing edge (n-1, 0).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the n-cycle (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
