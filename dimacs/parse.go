// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Parse and Load.

package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvcolor/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Load opens path and parses it. The instance is named after path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "dimacs: open %q", path)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse decodes DIMACS text from r. name labels the instance and error messages.
//
// Implementation:
//   - Stage 1: Split r into lines; skip blanks; dispatch on the first character.
//   - Stage 2: The 'p' line allocates the graph with n vertices.
//   - Stage 3: Each 'e' line adds one edge; out-of-range endpoints become Warnings.
//
// Complexity: O(L + n + m) for L input bytes.
func Parse(r io.Reader, name string) (*Instance, error) {
	inst := &Instance{Name: name}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		kind, rest := text[0], text[1:]

		switch kind {
		case 'c', '%':
			continue

		case 'p':
			if inst.Graph != nil {
				return nil, fmt.Errorf("%w: %s:%d", ErrDuplicateProblem, name, lineNo)
			}
			if err := inst.readProblem(rest, lineNo); err != nil {
				return nil, err
			}

		case 'e':
			if inst.Graph == nil {
				return nil, fmt.Errorf("%w: %s:%d", ErrEdgeBeforeProblem, name, lineNo)
			}
			if err := inst.readEdge(rest, lineNo); err != nil {
				return nil, err
			}

		case 'n':
			continue

		default:
			inst.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, pkgerrors.Wrapf(err, "dimacs: read %q", name)
	}
	if inst.Graph == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingProblem, name)
	}

	return inst, nil
}

// readProblem decodes the payload of a 'p' line and allocates the graph.
func (inst *Instance) readProblem(payload string, lineNo int) error {
	pl, err := problemParser.ParseString(inst.Name, payload)
	if err != nil {
		return fmt.Errorf("%w: %s:%d: problem line: %v", ErrMalformedLine, inst.Name, lineNo, err)
	}
	if pl.Format != FormatEdge && pl.Format != FormatCol {
		return fmt.Errorf("%w: %s:%d: %q", ErrUnsupportedFormat, inst.Name, lineNo, pl.Format)
	}
	if pl.Edges < 0 {
		return fmt.Errorf("%w: %s:%d: negative edge count %d", ErrMalformedLine, inst.Name, lineNo, pl.Edges)
	}

	g, err := core.NewGraph(int(pl.Vertices))
	if err != nil {
		return fmt.Errorf("%w: %s:%d: %w", ErrMalformedLine, inst.Name, lineNo, err)
	}
	inst.Format = pl.Format
	inst.DeclaredEdges = int(pl.Edges)
	inst.Graph = g

	return nil
}

// readEdge decodes the payload of an 'e' line and adds the edge.
func (inst *Instance) readEdge(payload string, lineNo int) error {
	el, err := edgeParser.ParseString(inst.Name, payload)
	if err != nil {
		return fmt.Errorf("%w: %s:%d: edge line: %v", ErrMalformedLine, inst.Name, lineNo, err)
	}

	u, v := int(el.U), int(el.V)
	if err = inst.Graph.AddEdge(u, v); err != nil {
		if errors.Is(err, core.ErrVertexOutOfRange) {
			inst.Warnings = append(inst.Warnings, Warning{Line: lineNo, U: u, V: v, Err: err})
			return nil
		}
		return err
	}

	return nil
}
