// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Name vertices through cfg.vertexID (or cfg.prefix for fixed schemes).
//   - Emit edges in a stable, documented order.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a new graph.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors wrapped via %w; branch with errors.Is against the
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g := graph.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures that are known to be valid.
// It panics on error and is meant for tests and examples.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *graph.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
