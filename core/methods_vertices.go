// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex queries.
//
// Determinism:
//   - Vertices() returns vertices in ascending ID order.
package core

// VertexCount returns n, the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// Vertex returns the vertex with the given ID.
//
// Errors:
//   - ErrVertexOutOfRange: id ∉ [1, n].
//
// Complexity: O(1).
func (g *Graph) Vertex(id int) (*Vertex, error) {
	return g.lookup(id)
}

// Vertices returns all vertices in ascending ID order.
//
// The slice is fresh but the *Vertex values are live; engines write Color
// through them.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Degree returns the degree of the vertex with the given ID.
// Self-loops count twice and repeated edges count once per occurrence.
//
// Errors:
//   - ErrVertexOutOfRange: id ∉ [1, n].
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	v, err := g.lookup(id)
	if err != nil {
		return 0, err
	}

	return v.Degree(), nil
}

// Neighbors returns a copy of the neighbor list of id, in insertion order.
//
// Errors:
//   - ErrVertexOutOfRange: id ∉ [1, n].
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]int, error) {
	v, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(v.neighbors))
	copy(out, v.neighbors)

	return out, nil
}

// MaxDegree returns the largest vertex degree, or 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	best := 0
	for _, v := range g.vertices {
		if d := v.Degree(); d > best {
			best = d
		}
	}

	return best
}
