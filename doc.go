// SPDX-License-Identifier: MIT

// Package lvcolor is a small, deterministic toolkit for greedy graph
// coloring: assign each vertex a color so that no two adjacent vertices
// share one, using as few colors as the heuristic manages.
//
// What is inside?
//
//	core/     - integer-ID undirected Graph with per-vertex colors
//	coloring/ - IDO, DSATUR and RLF engines, IsValid, Verify and the Run facade
//	builder/  - fixture constructors (cycles, wheels, K_n, Petersen, G(n,p), …)
//	dimacs/   - DIMACS ".col" reader/writer and instance downloader
//	session/  - benchmark sessions over DIMACS instances with an append-only results log
//	cmd/lvcolor - command line front end for sessions, downloads and generators
//	examples/ - runnable scenarios (exam timetabling, frequency assignment)
//
// Why greedy?
//
//   - Minimum coloring is NP-hard; greedy orderings are fast (O(V·(V+E)))
//     and give the classic baselines benchmark tables compare against.
//   - Every engine is deterministic: ties break by degree, then lowest ID,
//     so runs are reproducible across machines.
//
// Quick ASCII example:
//
//	1───2
//	│   │
//	4───3
//
// is a 4-cycle; every engine colors it with two colors, {1,3} and {2,4}.
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(4))
//	res, err := coloring.Run(g, coloring.AlgDSATUR, coloring.WithVerify())
//	// res.ColorCount == 2
//
//	go get github.com/katalvlaran/lvcolor
package lvcolor
