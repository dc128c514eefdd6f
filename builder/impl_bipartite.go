// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left part occupies the first n1 IDs, right part the next n2.
//   • Emits edges left[i] -> right[j] with i outer, j inner.
//
// Complexity: O(n1·n2).

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *buffer, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := b.addVertices(n1)
		right := b.addVertices(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				b.addEdge(left+i, right+j)
			}
		}

		return nil
	}
}
