// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcolor/core"
)

// engineFunc is the common signature of IDO, DSATUR and RLF.
type engineFunc func(g *core.Graph, opts ...Option) (int, error)

// engine resolves the algorithm tag to its implementation.
func (a Algorithm) engine() (engineFunc, error) {
	switch a {
	case AlgIDO:
		return IDO, nil
	case AlgDSATUR:
		return DSATUR, nil
	case AlgRLF:
		return RLF, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// Run colors g with the given algorithm and returns the run's Result.
//
// The algorithm is resolved once before the run starts. Elapsed covers the
// engine only. With WithVerify the coloring is checked after timing; on a
// verification failure the Result is returned together with the error.
//
// Errors:
//   - ErrGraphNil, ErrUnknownAlgorithm.
//   - Engine errors wrapped with the algorithm name.
//   - Verify errors when WithVerify is set.
func Run(g *core.Graph, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	run, err := alg.engine()
	if err != nil {
		return nil, err
	}
	o := resolve(opts)

	start := time.Now()
	k, err := run(g, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", alg, err)
	}

	res := &Result{
		Algorithm:  alg,
		ColorCount: k,
		Colors:     g.Colors(),
		Elapsed:    elapsed,
	}
	if o.Verify {
		if err = Verify(g, k); err != nil {
			return res, fmt.Errorf("%s: %w", alg, err)
		}
	}

	return res, nil
}
