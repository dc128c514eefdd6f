// SPDX-License-Identifier: MIT

// Package coloring computes proper vertex colorings of a core.Graph with three
// greedy heuristics: Incidence Degree Ordering (IDO), Degree of Saturation
// (DSATUR) and Recursive Largest First (RLF).
//
// What
//
//   - IDO and DSATUR share one greedy loop (Greedy) and differ only in the
//     Heuristic that scores uncolored vertices:
//   - IncidenceDegree: number of colored neighbors.
//   - Saturation:      number of distinct colors among colored neighbors.
//   - RLF builds one color class at a time: it seeds the class with the
//     uncolored vertex of largest degree and keeps adding the vertex that is
//     most surrounded by the forbidden set U (neighbors of the class).
//   - Run dispatches on an Algorithm value, times the run, and returns a
//     Result with the color count and a snapshot of the coloring.
//   - IsValid is the first-fit predicate; Verify checks a finished coloring.
//
// Why
//
//   - The heuristics give good upper bounds on the chromatic number in
//     O(V²·Δ) time, with RLF typically using the fewest colors at a higher
//     per-class cost.
//   - None of them is exact: the color count is an upper bound only.
//
// Determinism
//
//	Every selection breaks ties by larger static degree and then by lowest
//	vertex ID, because candidates are scanned in ascending ID order and only
//	a strictly better candidate replaces the current best. Repeated runs on
//	the same graph produce identical colorings.
//
// State
//
//	Each engine resets all vertex colors before it starts. Heuristic values
//	are kept in a scratch slice owned by the run and are never stored on the
//	graph, so switching algorithms cannot observe stale values.
//
// Complexity (V = |Vertices|, E = |Edges|, Δ = max degree)
//
//   - Greedy: O(V·(V + E)) time, O(V) extra memory.
//   - RLF:    O(V·(V + E)) time per color class in the worst case, O(V) extra memory.
//
// Usage
//
//	k, err := coloring.DSATUR(g)
//	if err != nil {
//		// ErrGraphNil or ErrNoSelectableVertex
//	}
//	colors := g.Colors()
//
//	res, err := coloring.Run(g, coloring.AlgRLF, coloring.WithVerify())
//	fmt.Println(res.Algorithm, res.ColorCount, res.Elapsed)
//
// Options
//
//   - WithOnAssign(fn): hook called after every color assignment.
//   - WithVerify():     Run checks the finished coloring with Verify.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrUnknownHeuristic    if Greedy receives an undefined Heuristic.
//   - ErrUnknownAlgorithm    if Run or ParseAlgorithm receives an undefined Algorithm.
//   - ErrNoSelectableVertex  if uncolored vertices remain but none can be selected.
//   - ErrUncolored, ErrColorRange, ErrColorGap, ErrImproperColoring from Verify.
//
// Concurrency
//
//	Runs are synchronous and single-threaded. Do not run two algorithms on
//	the same graph at the same time.
package coloring
