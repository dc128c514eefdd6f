// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one hub plus n-1 leaves.
//   • The hub is the first vertex of the block; leaves follow.
//   • Emits edges hub -> leaf in ascending leaf order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(b *buffer, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := b.addVertices(n)
		for i := 1; i < n; i++ {
			b.addEdge(hub, hub+i)
		}

		return nil
	}
}
