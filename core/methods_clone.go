// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a graph instance.

package core

// Clone returns a deep copy of the graph: vertices, neighbor lists, colors and
// the edge catalog. Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		vertices: make([]*Vertex, len(g.vertices)),
		edges:    make([]Edge, len(g.edges)),
	}
	for i, v := range g.vertices {
		nbrs := make([]int, len(v.neighbors))
		copy(nbrs, v.neighbors)
		clone.vertices[i] = &Vertex{id: v.id, Color: v.Color, neighbors: nbrs}
	}
	copy(clone.edges, g.edges)

	return clone
}
