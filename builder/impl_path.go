// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> i+1 for i = 0..n-2.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(b *buffer, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		first := b.addVertices(n)
		for i := 0; i < n-1; i++ {
			b.addEdge(first+i, first+i+1)
		}

		return nil
	}
}
