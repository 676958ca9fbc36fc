// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// helpers.go - shared vertex/edge emission with method-tagged errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

// addVertices inserts n vertices named cfg.vertexID(0..n-1) and returns their IDs
// in index order.
func addVertices(g *graph.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.vertexID(i)
		if _, err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge links u and v, tagging failures with the method name.
func addEdge(g *graph.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
