// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// rlfState is the mutable state of one RLF run.
type rlfState struct {
	vs        []*core.Vertex
	opts      Options
	forbidden []bool // U: neighbors of the current color class, indexed by ID-1
	scores    []int  // per-run scratch: |N(v) ∩ U|, indexed by ID-1
	colored   int
}

// RLF colors g with Recursive Largest First and returns the number of colors used.
//
// Implementation:
//   - Stage 1: Reset every vertex to Uncolored.
//   - Stage 2: While uncolored vertices remain, open a new color class:
//     seed it with the uncolored vertex of largest degree and put the seed's
//     neighbors into the forbidden set U.
//   - Stage 3: Repeatedly add the uncolored vertex outside U with the most
//     neighbor entries inside U (ties: larger degree, then lowest ID), and
//     extend U with its neighbors. The class is complete when no candidate
//     is left.
//
// Errors:
//   - ErrGraphNil.
//   - ErrNoSelectableVertex if no seed exists while the run still counts
//     uncolored vertices.
//
// Complexity: O(V·(V + E)) per color class in the worst case, O(V) extra space.
func RLF(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	g.ResetColors()

	vs := g.Vertices()
	s := &rlfState{
		vs:        vs,
		opts:      resolve(opts),
		forbidden: make([]bool, len(vs)),
		scores:    make([]int, len(vs)),
	}

	colorCount := 0
	for s.colored < len(vs) {
		seed := maxDegreeUncolored(vs)
		if seed == nil {
			return 0, fmt.Errorf("%w: RLF with %d of %d vertices colored",
				ErrNoSelectableVertex, s.colored, len(vs))
		}
		s.buildClass(seed, colorCount)
		colorCount++
	}

	return colorCount, nil
}

// buildClass grows the color class of the given color starting from seed.
func (s *rlfState) buildClass(seed *core.Vertex, color int) {
	for i := range s.forbidden {
		s.forbidden[i] = false
	}
	s.assign(seed, color)

	for {
		next := s.nextCandidate()
		if next == nil {
			return
		}
		s.assign(next, color)
	}
}

// nextCandidate returns the uncolored vertex outside U with the most
// neighbor entries in U, or nil when the class is complete.
func (s *rlfState) nextCandidate() *core.Vertex {
	var best *core.Vertex
	for _, v := range s.vs {
		if v.Colored() || s.forbidden[v.ID()-1] {
			continue
		}
		inU := 0
		for _, nb := range v.Neighbors() {
			if s.forbidden[nb-1] {
				inU++
			}
		}
		s.scores[v.ID()-1] = inU
		if best == nil || outranks(inU, v, s.scores[best.ID()-1], best) {
			best = v
		}
	}

	return best
}

// assign colors v, extends U with its neighbors and fires the hook.
func (s *rlfState) assign(v *core.Vertex, color int) {
	v.Color = color
	s.colored++
	for _, nb := range v.Neighbors() {
		s.forbidden[nb-1] = true
	}
	s.opts.OnAssign(v.ID(), color)
}
