// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_union.go - composition helpers.
//
// Determinism:
//   • Parts are applied in argument order; part k uses the ID prefix "g<k>:".

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodPrefixed = "Prefixed"
	methodDisjoint = "Disjoint"
)

// Prefixed runs con with every generated vertex ID prefixed by prefix.
// Prefixes nest when Prefixed calls are nested.
func Prefixed(prefix string, con Constructor) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("%s(%q): nil constructor: %w", methodPrefixed, prefix, ErrConstructFailed)
		}
		cfg.prefix += prefix

		return con(g, cfg)
	}
}

// Disjoint returns the disjoint union of the given parts.
// Complexity: Σ cost of the parts.
func Disjoint(cons ...Constructor) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		for k, con := range cons {
			if err := Prefixed(fmt.Sprintf("g%d:", k), con)(g, cfg); err != nil {
				return fmt.Errorf("%s: part %d: %w", methodDisjoint, k, err)
			}
		}

		return nil
	}
}
