// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_path.go - simple path P_n.
//
// Determinism:
//   • Vertices 0..n-1 in ascending order; edges (i, i+1) for i asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor for the path 0-1-…-(n-1).
// A single vertex (n == 1) is accepted and yields no edges.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
