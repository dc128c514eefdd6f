// SPDX-License-Identifier: MIT

// Package dimacs reads and writes graphs in the DIMACS edge format used by
// the graph coloring benchmark suites (".col" files).
//
// What:
//
//   - Parse(r, name) / Load(path): build a core.Graph from DIMACS text.
//   - Write(w, g, comments...): emit a core.Graph as DIMACS text.
//   - Download(ctx, client, url, dir): fetch a benchmark instance over HTTP.
//
// Format:
//
//	c <free text>          comment, ignored ('%' lines too)
//	p edge|col <n> <m>     problem line: n vertices, m declared edges
//	e <u> <v>              undirected edge, 1-based endpoints
//	n <id> <value>         node descriptor, ignored
//
// The line type is the first non-blank character, so "e1 2" reads as an
// edge line. Blank lines are skipped; lines of any other type are counted
// in Instance.Skipped.
//
// Errors:
//
//   - ErrUnsupportedFormat: problem format other than "edge" or "col".
//   - ErrEdgeBeforeProblem: an 'e' line precedes the 'p' line.
//   - ErrMalformedLine: a 'p' or 'e' line that does not parse.
//   - ErrDuplicateProblem: a second 'p' line.
//   - ErrMissingProblem: no 'p' line at all.
//   - ErrDownload: non-2xx response or unusable URL.
//
// Edges whose endpoints fall outside [1, n] are not fatal: they are dropped
// and reported in Instance.Warnings, and parsing continues.
//
// Determinism:
//
//   - Edges are added to the graph in file order, so neighbor lists (and
//     therefore every coloring run) are reproducible for a given file.
package dimacs
