// SPDX-License-Identifier: MIT

package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Verification errors returned by Verify.
var (
	// ErrUncolored indicates a vertex without a color after a run.
	ErrUncolored = errors.New("coloring: vertex left uncolored")

	// ErrColorRange indicates a color outside [0, k).
	ErrColorRange = errors.New("coloring: color out of range")

	// ErrColorGap indicates a palette index in [0, k) that no vertex uses.
	ErrColorGap = errors.New("coloring: unused color index")

	// ErrImproperColoring indicates two adjacent vertices sharing a color.
	ErrImproperColoring = errors.New("coloring: adjacent vertices share a color")
)

// IsValid reports whether color c can be given to vertex id without
// conflicting with an already-colored neighbor. Uncolored neighbors never
// conflict. An out-of-range id or nil graph yields false.
//
// Complexity: O(deg(id)). Pure: no mutation.
func IsValid(g *core.Graph, id, c int) bool {
	if g == nil {
		return false
	}
	v, err := g.Vertex(id)
	if err != nil {
		return false
	}

	return isValid(g.Vertices(), v, c)
}

// isValid is IsValid over a pre-fetched vertex slice (index = ID-1).
func isValid(vs []*core.Vertex, v *core.Vertex, c int) bool {
	for _, nb := range v.Neighbors() {
		if vs[nb-1].Color == c {
			return false
		}
	}

	return true
}

// Verify checks that the current coloring of g uses exactly the colors
// 0..k-1 and that no edge joins two vertices of the same color.
//
// Self-loops are skipped: a loop can never be properly colored.
//
// Errors (first failure wins, in this order):
//   - ErrGraphNil
//   - ErrUncolored, ErrColorRange: checked per vertex in ascending ID order.
//   - ErrImproperColoring: checked per edge in insertion order.
//   - ErrColorGap: lowest unused index.
//
// Complexity: O(V + E).
func Verify(g *core.Graph, k int) error {
	if g == nil {
		return ErrGraphNil
	}
	if k < 0 {
		return fmt.Errorf("%w: k=%d", ErrColorRange, k)
	}

	used := make([]bool, k)
	for _, v := range g.Vertices() {
		if !v.Colored() {
			return fmt.Errorf("%w: vertex %d", ErrUncolored, v.ID())
		}
		if v.Color >= k {
			return fmt.Errorf("%w: vertex %d has color %d, k=%d", ErrColorRange, v.ID(), v.Color, k)
		}
		used[v.Color] = true
	}

	colors := g.Colors()
	for _, e := range g.Edges() {
		if e.U == e.V {
			continue
		}
		if colors[e.U-1] == colors[e.V-1] {
			return fmt.Errorf("%w: edge (%d,%d) color %d", ErrImproperColoring, e.U, e.V, colors[e.U-1])
		}
	}

	for c, ok := range used {
		if !ok {
			return fmt.Errorf("%w: %d of k=%d", ErrColorGap, c, k)
		}
	}

	return nil
}
