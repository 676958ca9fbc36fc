// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_bipartite.go - complete bipartite graph K_{n1,n2}.
//
// Determinism:
//   • Left vertices "<lp>0".."<lp>n1-1" first, then the right side.
//   • Cross edges emitted for i asc over left, j asc over right.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		side := func(prefix string, n int) ([]string, error) {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("%s%s%d", cfg.prefix, prefix, i)
				if _, err := g.AddVertex(ids[i]); err != nil {
					return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, ids[i], err)
				}
			}
			return ids, nil
		}
		left, err := side(cfg.leftPrefix, n1)
		if err != nil {
			return err
		}
		right, err := side(cfg.rightPrefix, n2)
		if err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
