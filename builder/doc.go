// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options-style graph
// constructors for producing core.Graph fixtures: classic topologies whose
// chromatic numbers are known, plus seeded random graphs for benchmarks.
//
// The package offers the following key components:
//
//   - BuildGraph(bopts, cons...): the single orchestrator. Constructors emit
//     vertices and edges into a buffer; the buffer is replayed into one
//     core.NewGraph(total) once every constructor has succeeded.
//   - Constructor: a closure that reserves a block of fresh vertex IDs and
//     emits edges between them. Several constructors compose as a disjoint
//     union, in call order.
//   - Topologies:
//     – Empty(n)                   n isolated vertices          χ = 1 (n ≥ 1)
//     – Path(n)                    P_n                          χ = 2
//     – Cycle(n)                   C_n                          χ = 2 or 3
//     – Star(n)                    K_{1,n-1}, hub first         χ = 2
//     – Wheel(n)                   C_{n-1} + hub, hub last      χ = 3 or 4
//     – Complete(n)                K_n                          χ = n
//     – CompleteBipartite(n1, n2)  K_{n1,n2}, left side first   χ = 2
//     – Grid(rows, cols)           4-neighborhood lattice       χ ≤ 2
//     – Petersen()                 Petersen graph               χ = 3
//     – RandomSparse(n, p)         Erdős–Rényi G(n,p)
//   - Options: WithSeed(seed), WithRand(rng).
//
// Guarantees:
//
//   - IDs inside one constructor are assigned in ascending order starting
//     right after the previous constructor's block.
//   - Edges are emitted in a documented, stable order; the resulting
//     neighbor lists are therefore reproducible.
//   - Invalid parameters return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource); no graph is returned.
//   - Option constructors panic on nil inputs (programmer error); builders
//     never panic at runtime.
package builder
