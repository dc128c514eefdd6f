// SPDX-License-Identifier: MIT

package dimacs_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/dimacs"
)

// ExampleParse decodes a triangle with one stray edge.
func ExampleParse() {
	text := "c triangle\np edge 3 4\ne 1 2\ne 2 3\ne 3 1\ne 3 9\n"
	inst, err := dimacs.Parse(strings.NewReader(text), "triangle.col")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(inst.Graph.VertexCount(), inst.Graph.EdgeCount(), inst.DeclaredEdges)
	for _, w := range inst.Warnings {
		fmt.Println(w.Line, w.U, w.V)
	}
	// Output:
	// 3 3 4
	// 6 3 9
}

// ExampleWrite encodes a 4-vertex star.
func ExampleWrite() {
	g, _ := builder.BuildGraph(nil, builder.Star(4))
	_ = dimacs.Write(os.Stdout, g, "star K1,3")
	// Output:
	// c star K1,3
	// p edge 4 3
	// e 1 2
	// e 1 3
	// e 1 4
}
