// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = decimalID   ("0","1","2",...)
//   • rng         = nil         (pure/deterministic unless seeded)
//   • left/right  = "L" / "R"
//   • prefix      = ""          (set by Prefixed/Disjoint only)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors, so Prefixed can derive a child
// config without affecting siblings.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Bipartite ID prefixes (left/right).
	leftPrefix  string
	rightPrefix string

	// prefix is prepended to every generated ID.
	prefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier). Empty bipartite prefixes
// fall back to the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// vertexID renders the ID of the i-th vertex of the current constructor.
func (c builderConfig) vertexID(i int) string {
	return c.prefix + c.idFn(i)
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
