// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, Instance and Warning.

package dimacs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Sentinel errors for DIMACS decoding and fetching.
var (
	// ErrUnsupportedFormat indicates a problem line whose format is not "edge" or "col".
	ErrUnsupportedFormat = errors.New("dimacs: unsupported problem format")

	// ErrEdgeBeforeProblem indicates an edge line before the problem line.
	ErrEdgeBeforeProblem = errors.New("dimacs: edge line before problem line")

	// ErrMalformedLine indicates a problem or edge line that does not parse.
	ErrMalformedLine = errors.New("dimacs: malformed line")

	// ErrDuplicateProblem indicates a second problem line.
	ErrDuplicateProblem = errors.New("dimacs: duplicate problem line")

	// ErrMissingProblem indicates input without a problem line.
	ErrMissingProblem = errors.New("dimacs: no problem line")

	// ErrDownload indicates a failed instance download.
	ErrDownload = errors.New("dimacs: download failed")
)

// Supported problem formats.
const (
	FormatEdge = "edge"
	FormatCol  = "col"
)

// Warning reports an edge line that was dropped.
type Warning struct {
	Line int
	U, V int
	Err  error
}

// String renders the warning for logs.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: edge (%d,%d) dropped: %v", w.Line, w.U, w.V, w.Err)
}

// Instance is a decoded DIMACS file.
type Instance struct {
	// Name identifies the source, usually its path.
	Name string

	// Format is the problem format: FormatEdge or FormatCol.
	Format string

	// Graph holds the declared vertices and every accepted edge.
	Graph *core.Graph

	// DeclaredEdges is m from the problem line. It may differ from
	// Graph.EdgeCount() when edges were dropped or the header is inaccurate.
	DeclaredEdges int

	// Warnings lists dropped edges in file order.
	Warnings []Warning

	// Skipped counts lines of unknown type.
	Skipped int
}
