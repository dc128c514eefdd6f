// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges for all pairs i<j in lexicographic order.
//
// Complexity:
//   • Time: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *buffer, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		first := b.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.addEdge(first+i, first+j)
			}
		}

		return nil
	}
}
