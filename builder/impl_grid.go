// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_grid.go - rows×cols 4-neighbourhood grid.
//
// Determinism:
//   • Vertices in row-major order with IDs "r,c".
//   • For each cell (row-major): right edge, then down edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice. Vertex IDs are "r,c"
// (prefixed when composed through Prefixed); WithIDScheme does not apply.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		id := func(r, c int) string { return fmt.Sprintf("%s%d,%d", cfg.prefix, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}
