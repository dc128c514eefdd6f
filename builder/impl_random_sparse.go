// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (else ErrNeedRandSource). p==0 and p==1
//     are deterministic and need no RNG.
//   • Trials run over pairs i<j in lexicographic order; one rng.Float64()
//     draw per pair, so a fixed seed reproduces the graph exactly.
//
// Complexity: O(n²) trials.

package builder

import "fmt"

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
)

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n,p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(b *buffer, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: p=%.6g: %w", methodRandomSparse, p, ErrNeedRandSource)
		}

		first := b.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == 0:
				case p == 1:
					b.addEdge(first+i, first+j)
				case cfg.rng.Float64() < p:
					b.addEdge(first+i, first+j)
				}
			}
		}

		return nil
	}
}
