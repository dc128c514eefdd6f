// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: Write, the DIMACS encoder.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvcolor/core"
)

// Write emits g as DIMACS "edge" text: one 'c' line per comment line,
// the problem line, then one 'e' line per edge in insertion order.
// Parse(Write(g)) reproduces g's vertices, edges and neighbor order.
func Write(w io.Writer, g *core.Graph, comments ...string) error {
	if g == nil {
		return errors.New("dimacs: nil graph")
	}
	bw := bufio.NewWriter(w)

	for _, c := range comments {
		for _, line := range strings.Split(c, "\n") {
			if _, err := fmt.Fprintf(bw, "c %s\n", line); err != nil {
				return errors.Wrap(err, "dimacs: write comment")
			}
		}
	}
	if _, err := fmt.Fprintf(bw, "p %s %d %d\n", FormatEdge, g.VertexCount(), g.EdgeCount()); err != nil {
		return errors.Wrap(err, "dimacs: write problem line")
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e.U, e.V); err != nil {
			return errors.Wrapf(err, "dimacs: write edge (%d,%d)", e.U, e.V)
		}
	}

	return errors.Wrap(bw.Flush(), "dimacs: flush")
}
