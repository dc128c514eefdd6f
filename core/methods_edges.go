// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge queries.
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbor lists preserve insertion order.
package core

import "fmt"

// AddEdge inserts the undirected edge {u,v}.
//
// Implementation:
//   - Stage 1: Validate both endpoints against [1, n].
//   - Stage 2: Append v to u's neighbor list and u to v's neighbor list.
//   - Stage 3: Record the edge in the insertion-ordered edge catalog.
//
// Behavior highlights:
//   - Self-loops are accepted; u appears twice in its own list (degree +2).
//   - Repeated edges are accepted; each occurrence adds one list entry per endpoint.
//
// Errors:
//   - ErrVertexOutOfRange: either endpoint ∉ [1, n]. The graph is unchanged,
//     so callers may log the error as a warning and continue loading.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge (%d,%d), n=%d", ErrVertexOutOfRange, u, v, len(g.vertices))
	}

	a, b := g.vertices[u-1], g.vertices[v-1]
	a.neighbors = append(a.neighbors, v)
	b.neighbors = append(b.neighbors, u)
	g.edges = append(g.edges, Edge{U: u, V: v})

	return nil
}

// EdgeCount returns the number of accepted edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edges returns a copy of the accepted edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
