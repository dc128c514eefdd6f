// SPDX-License-Identifier: MIT

package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
)

// ExampleRun colors the path 1-2-3-4 with every algorithm.
func ExampleRun() {
	for _, alg := range coloring.Algorithms() {
		g, _ := builder.BuildGraph(nil, builder.Path(4))
		res, err := coloring.Run(g, alg, coloring.WithVerify())
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(res.Algorithm, res.ColorCount, res.Colors, res.ColorClasses())
	}
	// Output:
	// IDO 2 [1 0 1 0] [[2 4] [1 3]]
	// DSATUR 2 [1 0 1 0] [[2 4] [1 3]]
	// RLF 2 [1 0 1 0] [[2 4] [1 3]]
}

// ExampleIsValid asks which colors vertex 2 of a triangle may take.
func ExampleIsValid() {
	g, _ := builder.BuildGraph(nil, builder.Complete(3))
	_ = g.SetColor(1, 0)
	_ = g.SetColor(3, 2)
	for c := 0; c < 3; c++ {
		fmt.Println(c, coloring.IsValid(g, 2, c))
	}
	// Output:
	// 0 false
	// 1 true
	// 2 false
}
