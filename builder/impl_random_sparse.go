// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p) sampler.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j > i.
//   - Deterministic outcomes for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a simple undirected graph
// over n vertices with independent edge probability p.
// p == 0 and p == 1 need no RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
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

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
