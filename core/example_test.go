// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// ExampleGraph_AddEdge builds a small square and shows how an out-of-range
// edge is rejected without disturbing the graph.
//
//	1───2
//	│   │
//	4───3
func ExampleGraph_AddEdge() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 4)
	_ = g.AddEdge(4, 1)

	if err := g.AddEdge(4, 5); errors.Is(err, core.ErrVertexOutOfRange) {
		fmt.Println("warning:", err)
	}

	for _, v := range g.Vertices() {
		fmt.Println(v.ID(), v.Degree(), v.Neighbors())
	}
	// Output:
	// warning: core: vertex id out of range: edge (4,5), n=4
	// 1 2 [2 4]
	// 2 2 [1 3]
	// 3 2 [2 4]
	// 4 2 [3 1]
}
