// SPDX-License-Identifier: MIT

// Package core provides the in-memory graph model used by the coloring engines:
// a simple undirected graph over the vertex IDs 1..n with ordered adjacency
// lists, fixed degrees, and a mutable per-vertex color.
//
// The Graph G = (V,E) is sized once and never shrinks:
//
//   - NewGraph(n) allocates n uncolored vertices with IDs 1..n.
//   - AddEdge(u,v) appends v to u's neighbor list and u to v's neighbor list.
//   - An edge with an endpoint outside [1,n] is rejected with
//     ErrVertexOutOfRange and the graph is left untouched; loaders treat
//     this as a warning and keep going.
//   - Self-loops and repeated edges are accepted as-is. They inflate the
//     degree and every count derived from the neighbor list.
//
// Why a dedicated model?
//
//   - Degree is len(neighbors) and is fixed after loading, so heuristics can
//     read it in O(1) without rescanning edges.
//   - Vertices() enumerates in ascending ID order, which is the final
//     tie-break used by every coloring engine.
//   - Color state lives on the vertex and is reset by each engine before it
//     runs; per-run heuristic values never do.
//
// Colors:
//
//	Uncolored (-1) marks a vertex that has not been assigned yet.
//	Any value ≥ 0 is an index into the palette of the current run.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int) (*Graph, error)          // O(n)
//	AddEdge(u, v int) error                  // O(1) amortized
//	Clone() *Graph                           // O(V+E)
//
//	// Queries
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1)
//	Edges() []Edge                           // O(E), insertion order
//	Vertex(id int) (*Vertex, error)          // O(1)
//	Vertices() []*Vertex                     // O(V), ascending ID
//	Degree(id int) (int, error)              // O(1)
//	Neighbors(id int) ([]int, error)         // O(deg)
//	MaxDegree() int                          // O(V)
//
//	// Colors
//	Color(id int) (int, error)               // O(1)
//	SetColor(id, c int) error                // O(1)
//	ResetColors()                            // O(V)
//	Colors() []int                           // O(V) snapshot
//	ColoredCount() int                       // O(V)
//
// Concurrency:
//
//	Graph is not safe for concurrent use. A coloring run owns the graph for
//	its whole duration; run algorithms one at a time.
package core
