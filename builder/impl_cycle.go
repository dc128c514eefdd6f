// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> (i+1)%n for i = 0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Even n is 2-chromatic, odd n needs 3 colors.
func Cycle(n int) Constructor {
	return func(b *buffer, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		first := b.addVertices(n)
		for i := 0; i < n; i++ {
			b.addEdge(first+i, first+(i+1)%n)
		}

		return nil
	}
}
