// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): rim C_{n-1} plus a hub.
//   • Rim vertices come first, the hub is the last vertex of the block.
//   • Emits rim edges i -> (i+1)%(n-1) first, then spokes hub -> rim[i].
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n.
// χ(W_n) is 3 when the rim is even and 4 when it is odd.
func Wheel(n int) Constructor {
	return func(b *buffer, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		first := b.addVertices(n)
		rim := n - 1
		hub := first + rim
		for i := 0; i < rim; i++ {
			b.addEdge(first+i, first+(i+1)%rim)
		}
		for i := 0; i < rim; i++ {
			b.addEdge(hub, first+i)
		}

		return nil
	}
}
