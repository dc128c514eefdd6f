// SPDX-License-Identifier: MIT

// Package coloring provides options, algorithm tags, results, and error
// definitions for greedy graph coloring over a core.Graph.
package coloring

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for coloring runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrUnknownHeuristic is returned when Greedy receives an undefined Heuristic.
	ErrUnknownHeuristic = errors.New("coloring: unknown heuristic")

	// ErrUnknownAlgorithm is returned for an undefined Algorithm value or name.
	ErrUnknownAlgorithm = errors.New("coloring: unknown algorithm")

	// ErrNoSelectableVertex reports that uncolored vertices remain but none
	// could be selected. The run is aborted.
	ErrNoSelectableVertex = errors.New("coloring: no selectable vertex")
)

// Heuristic selects the scoring rule of the shared greedy loop.
type Heuristic int

const (
	// IncidenceDegree scores a vertex by its number of colored neighbors.
	IncidenceDegree Heuristic = iota
	// Saturation scores a vertex by the number of distinct colors among its neighbors.
	Saturation
)

// String returns the heuristic name.
func (h Heuristic) String() string {
	switch h {
	case IncidenceDegree:
		return "incidence-degree"
	case Saturation:
		return "saturation"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// Algorithm tags one of the three coloring engines.
type Algorithm int

const (
	// AlgIDO is greedy coloring driven by the IncidenceDegree heuristic.
	AlgIDO Algorithm = iota
	// AlgDSATUR is greedy coloring driven by the Saturation heuristic.
	AlgDSATUR
	// AlgRLF is Recursive Largest First.
	AlgRLF
)

// Algorithms returns every algorithm in canonical order: IDO, DSATUR, RLF.
func Algorithms() []Algorithm {
	return []Algorithm{AlgIDO, AlgDSATUR, AlgRLF}
}

// String returns the conventional algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgIDO:
		return "IDO"
	case AlgDSATUR:
		return "DSATUR"
	case AlgRLF:
		return "RLF"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
// Returns ErrUnknownAlgorithm for anything other than IDO, DSATUR or RLF.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "IDO":
		return AlgIDO, nil
	case "DSATUR":
		return AlgDSATUR, nil
	case "RLF":
		return AlgRLF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Option configures a coloring run via functional arguments.
type Option func(*Options)

// Options holds hooks and flags for a coloring run.
type Options struct {
	// OnAssign is called after a vertex receives a color.
	OnAssign func(id, color int)

	// Verify makes Run check the finished coloring with Verify.
	Verify bool
}

// DefaultOptions returns Options with a no-op OnAssign and verification off.
func DefaultOptions() Options {
	return Options{
		OnAssign: func(int, int) {},
		Verify:   false,
	}
}

// WithOnAssign registers a hook called after every color assignment.
// A nil fn is ignored.
func WithOnAssign(fn func(id, color int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// WithVerify makes Run verify the coloring before returning.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is the outcome of one coloring run.
//   - Colors: index i holds the color of vertex i+1.
//   - ColorCount: number of colors used; colors are exactly 0..ColorCount-1.
//   - Elapsed: wall time of the engine, excluding verification.
type Result struct {
	Algorithm  Algorithm
	ColorCount int
	Colors     []int
	Elapsed    time.Duration
}

// ColorClasses groups vertex IDs by color; class c lists its vertices in ascending ID order.
func (r *Result) ColorClasses() [][]int {
	classes := make([][]int, r.ColorCount)
	for i, c := range r.Colors {
		if c >= 0 && c < r.ColorCount {
			classes[c] = append(classes[c], i+1)
		}
	}

	return classes
}
