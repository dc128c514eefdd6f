// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/lvcolor/core"
)

// scorer computes the heuristic value of one uncolored vertex.
type scorer interface {
	score(v *core.Vertex) int
}

// incidenceScorer counts colored neighbor entries.
type incidenceScorer struct {
	vs []*core.Vertex
}

func (s incidenceScorer) score(v *core.Vertex) int {
	n := 0
	for _, nb := range v.Neighbors() {
		if s.vs[nb-1].Colored() {
			n++
		}
	}

	return n
}

// saturationScorer counts distinct neighbor colors. The set is reused
// across calls within one run.
type saturationScorer struct {
	vs  []*core.Vertex
	set *hashset.Set
}

func (s saturationScorer) score(v *core.Vertex) int {
	s.set.Clear()
	for _, nb := range v.Neighbors() {
		if c := s.vs[nb-1].Color; c != core.Uncolored {
			s.set.Add(c)
		}
	}

	return s.set.Size()
}

// newScorer resolves h once per run.
func newScorer(h Heuristic, vs []*core.Vertex) (scorer, error) {
	switch h {
	case IncidenceDegree:
		return incidenceScorer{vs: vs}, nil
	case Saturation:
		return saturationScorer{vs: vs, set: hashset.New()}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(h))
	}
}

// IDO colors g with Incidence Degree Ordering and returns the number of colors used.
func IDO(g *core.Graph, opts ...Option) (int, error) {
	return Greedy(g, IncidenceDegree, opts...)
}

// DSATUR colors g with the Degree of Saturation heuristic and returns the number of colors used.
func DSATUR(g *core.Graph, opts ...Option) (int, error) {
	return Greedy(g, Saturation, opts...)
}

// Greedy runs the greedy coloring loop shared by IDO and DSATUR.
//
// Implementation:
//   - Stage 1: Reset every vertex to Uncolored; an empty graph returns 0.
//   - Stage 2: Color the vertex of largest degree (lowest ID on ties) with 0.
//   - Stage 3: Until every vertex is colored, score all uncolored vertices
//     with h, pick the best (score, then degree, then lowest ID) and give it
//     the first palette color accepted by IsValid, or a new color.
//
// Returns:
//   - int: palette size; colors on g are exactly 0..k-1.
//
// Errors:
//   - ErrGraphNil, ErrUnknownHeuristic.
//   - ErrNoSelectableVertex if the graph was recolored behind the run
//     (for example by an OnAssign hook) so that no uncolored vertex is left
//     while the run still expects one.
//
// Complexity: O(V·(V + E)) time, O(V) extra space.
func Greedy(g *core.Graph, h Heuristic, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolve(opts)

	vs := g.Vertices()
	sc, err := newScorer(h, vs)
	if err != nil {
		return 0, err
	}

	g.ResetColors()
	n := len(vs)
	if n == 0 {
		return 0, nil
	}

	seed := maxDegreeUncolored(vs)
	seed.Color = 0
	o.OnAssign(seed.ID(), 0)
	palette := 1

	// scores is per-run scratch indexed by ID-1; it never outlives this call.
	scores := make([]int, n)
	for remaining := n - 1; remaining > 0; remaining-- {
		var best *core.Vertex
		for _, v := range vs {
			if v.Colored() {
				continue
			}
			scores[v.ID()-1] = sc.score(v)
			if best == nil || outranks(scores[v.ID()-1], v, scores[best.ID()-1], best) {
				best = v
			}
		}
		if best == nil {
			return 0, fmt.Errorf("%w: %s with %d vertices left", ErrNoSelectableVertex, h, remaining)
		}

		c := firstFit(vs, best, palette)
		if c == palette {
			palette++
		}
		best.Color = c
		o.OnAssign(best.ID(), c)
	}

	return palette, nil
}

// firstFit returns the first palette color in [0, palette) valid for v, or
// palette itself when every existing color conflicts.
func firstFit(vs []*core.Vertex, v *core.Vertex, palette int) int {
	for c := 0; c < palette; c++ {
		if isValid(vs, v, c) {
			return c
		}
	}

	return palette
}

// maxDegreeUncolored returns the uncolored vertex of largest degree, lowest
// ID on ties, or nil if every vertex is colored.
func maxDegreeUncolored(vs []*core.Vertex) *core.Vertex {
	var best *core.Vertex
	for _, v := range vs {
		if v.Colored() {
			continue
		}
		if best == nil || v.Degree() > best.Degree() {
			best = v
		}
	}

	return best
}

// outranks reports whether candidate a (score sa) beats the current best b
// (score sb). Equal score and degree keep b, which has the lower ID because
// candidates are scanned in ascending ID order.
func outranks(sa int, a *core.Vertex, sb int, b *core.Vertex) bool {
	if sa != sb {
		return sa > sb
	}

	return a.Degree() > b.Degree()
}
