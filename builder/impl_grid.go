// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) gets ID first + r*cols + c (row-major).
//   • For each cell in row-major order emits the right edge, then the down edge.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(b *buffer, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		first := b.addVertices(rows * cols)
		at := func(r, c int) int { return first + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					b.addEdge(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					b.addEdge(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
