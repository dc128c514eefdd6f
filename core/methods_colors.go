// SPDX-License-Identifier: MIT
//
// File: methods_colors.go
// Role: Color state: read, write, reset, snapshot.
//
// Hints:
//   - Every coloring engine calls ResetColors first; callers never need to.
//   - Colors() is a snapshot; later runs do not change a returned slice.
package core

import "fmt"

// Color returns the current color of id (Uncolored or ≥ 0).
//
// Errors:
//   - ErrVertexOutOfRange: id ∉ [1, n].
func (g *Graph) Color(id int) (int, error) {
	v, err := g.lookup(id)
	if err != nil {
		return Uncolored, err
	}

	return v.Color, nil
}

// SetColor assigns c to id. c == Uncolored clears the vertex.
//
// Errors:
//   - ErrVertexOutOfRange: id ∉ [1, n].
//   - ErrBadColor: c < Uncolored.
func (g *Graph) SetColor(id, c int) error {
	if c < Uncolored {
		return fmt.Errorf("%w: %d", ErrBadColor, c)
	}
	v, err := g.lookup(id)
	if err != nil {
		return err
	}
	v.Color = c

	return nil
}

// ResetColors marks every vertex Uncolored.
// Complexity: O(V).
func (g *Graph) ResetColors() {
	for _, v := range g.vertices {
		v.Color = Uncolored
	}
}

// Colors returns a snapshot of all colors; index i holds the color of vertex i+1.
// Complexity: O(V).
func (g *Graph) Colors() []int {
	out := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Color
	}

	return out
}

// ColoredCount returns how many vertices currently hold a color.
// Complexity: O(V).
func (g *Graph) ColoredCount() int {
	n := 0
	for _, v := range g.vertices {
		if v.Colored() {
			n++
		}
	}

	return n
}
