// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons
//     in order against one buffer, then materializes a single core.Graph.
//   - Topology factories live in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//
// Hints:
//   - Compose constructors to get disjoint unions, e.g. a triangle next to a star.
//   - Use WithSeed(...) to freeze RandomSparse.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Constructor emits one topology into the build buffer. Constructors MUST:
//   - Validate parameters before reserving vertices.
//   - Reserve their own block with addVertices and only reference IDs in it.
//   - Emit edges in a stable, documented order.
type Constructor func(b *buffer, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies every
// constructor in order and returns the resulting graph.
//
// Errors:
//   - Constructor errors wrapped as "BuildGraph: %w"; branch with errors.Is
//     against ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
//   - ErrConstructFailed for a nil constructor or an edge core rejects.
//
// Complexity: Σ cost of constructors + O(V + E) to materialize the graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	b := &buffer{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(b.n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	for _, e := range b.edges {
		if err = g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
		}
	}

	return g, nil
}
