// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_empty.go - implementation of Empty(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices). n == 0 contributes nothing.
//   • Reserves n isolated vertices; emits no edges.
//
// Complexity: O(1).

package builder

import "fmt"

const (
	methodEmpty   = "Empty"
	minEmptyNodes = 0
)

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(b *buffer, _ builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}
		b.addVertices(n)

		return nil
	}
}
