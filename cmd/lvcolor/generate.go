// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/dimacs"
)

// generator maps the -generate kinds to builder constructors.
type generator struct {
	kind string
	ctor func(n, m int, p float64) builder.Constructor
}

var generators = []generator{
	{"empty", func(n, _ int, _ float64) builder.Constructor { return builder.Empty(n) }},
	{"path", func(n, _ int, _ float64) builder.Constructor { return builder.Path(n) }},
	{"cycle", func(n, _ int, _ float64) builder.Constructor { return builder.Cycle(n) }},
	{"star", func(n, _ int, _ float64) builder.Constructor { return builder.Star(n) }},
	{"wheel", func(n, _ int, _ float64) builder.Constructor { return builder.Wheel(n) }},
	{"complete", func(n, _ int, _ float64) builder.Constructor { return builder.Complete(n) }},
	{"bipartite", func(n, m int, _ float64) builder.Constructor { return builder.CompleteBipartite(n, m) }},
	{"grid", func(n, m int, _ float64) builder.Constructor { return builder.Grid(n, m) }},
	{"petersen", func(int, int, float64) builder.Constructor { return builder.Petersen() }},
	{"random", func(n, _ int, p float64) builder.Constructor { return builder.RandomSparse(n, p) }},
}

// generatorKinds lists the kinds in help order.
func generatorKinds() []string {
	kinds := make([]string, len(generators))
	for i, g := range generators {
		kinds[i] = g.kind
	}

	return kinds
}

// runGenerate builds the requested topology and writes it as DIMACS.
func runGenerate(stdout io.Writer, o *options) error {
	var gen *generator
	for i := range generators {
		if generators[i].kind == o.generate {
			gen = &generators[i]
			break
		}
	}
	if gen == nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown generator kind %q", o.generate)}
	}

	m := o.m
	if m == 0 {
		m = o.n
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(o.seed)}, gen.ctor(o.n, m, o.p))
	if err != nil {
		return fmt.Errorf("generate %s: %w", o.generate, err)
	}

	comment := fmt.Sprintf("lvcolor -generate %s -n %d -m %d -p %g -seed %d", o.generate, o.n, m, o.p, o.seed)
	if o.out == "" {
		return dimacs.Write(stdout, g, comment)
	}

	f, err := os.Create(o.out)
	if err != nil {
		return errors.Wrapf(err, "generate: create %q", o.out)
	}
	if err = dimacs.Write(f, g, comment); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "generate: close %q", o.out)
}
