// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_complete.go - complete graph K_n.
//
// Determinism:
//   • Edges emitted for i asc, j asc with j > i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
