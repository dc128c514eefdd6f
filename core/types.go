// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph received n < 0.
//	ErrVertexOutOfRange    - a vertex ID outside [1, n].
//	ErrBadColor            - a color below Uncolored.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates that NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex ID outside [1, VertexCount()].
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrBadColor indicates a color value below Uncolored.
	ErrBadColor = errors.New("core: bad color")
)

// Uncolored marks a vertex that holds no color.
const Uncolored = -1

// Vertex is a single node of the graph.
//
// The ID is fixed at construction and read through ID(). Color is written by the coloring engines and
// is either Uncolored or a non-negative palette index.
type Vertex struct {
	// id is the 1-based identifier of this vertex.
	id int

	// Color is Uncolored or a palette index ≥ 0.
	Color int

	// neighbors keeps insertion order; repeated edges repeat entries.
	neighbors []int
}

// ID returns the 1-based identifier of the vertex.
func (v *Vertex) ID() int { return v.id }

// Degree returns the number of entries in the neighbor list.
func (v *Vertex) Degree() int { return len(v.neighbors) }

// Neighbors returns the live neighbor list. Treat it as read-only.
func (v *Vertex) Neighbors() []int { return v.neighbors }

// Colored reports whether the vertex currently holds a color.
func (v *Vertex) Colored() bool { return v.Color != Uncolored }

// Edge records one accepted AddEdge call.
type Edge struct {
	U int
	V int
}

// Graph is an undirected graph over the vertex IDs 1..n.
//
// vertices[i] holds the vertex with ID i+1. edges keeps accepted edges in
// insertion order for serialization and verification.
type Graph struct {
	vertices []*Vertex
	edges    []Edge
}

// NewGraph creates a graph with n uncolored, isolated vertices.
// Returns ErrNegativeVertexCount if n < 0. n == 0 is a valid empty graph.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}
	g := &Graph{vertices: make([]*Vertex, n)}
	for i := 0; i < n; i++ {
		g.vertices[i] = &Vertex{id: i + 1, Color: Uncolored}
	}

	return g, nil
}

// inRange reports whether id names an existing vertex.
func (g *Graph) inRange(id int) bool {
	return id >= 1 && id <= len(g.vertices)
}

// lookup returns the vertex for id or a wrapped ErrVertexOutOfRange.
func (g *Graph) lookup(id int) (*Vertex, error) {
	if !g.inRange(id) {
		return nil, fmt.Errorf("%w: id=%d, n=%d", ErrVertexOutOfRange, id, len(g.vertices))
	}

	return g.vertices[id-1], nil
}
