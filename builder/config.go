// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// config.go - internal configuration and the vertex/edge buffer.
//
// Design:
//   • builderConfig is the single source of truth for builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//   • buffer collects vertices and edges so the final core.Graph can be
//     sized exactly once.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvcolor/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// buffer accumulates the vertex count and the edge list of a build.
type buffer struct {
	n     int
	edges []core.Edge
}

// addVertices reserves k fresh vertices and returns the ID of the first one.
// The block is first, first+1, …, first+k-1.
func (b *buffer) addVertices(k int) int {
	first := b.n + 1
	b.n += k

	return first
}

// addEdge buffers the undirected edge {u,v}.
func (b *buffer) addEdge(u, v int) {
	b.edges = append(b.edges, core.Edge{U: u, V: v})
}
