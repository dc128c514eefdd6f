// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/builder"
)

// ExampleBuildGraph composes a triangle and a 3-vertex star into one graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Star(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	for _, v := range g.Vertices() {
		fmt.Println(v.ID(), v.Neighbors())
	}
	// Output:
	// 6 5
	// 1 [2 3]
	// 2 [1 3]
	// 3 [1 2]
	// 4 [5 6]
	// 5 [4]
	// 6 [4]
}
