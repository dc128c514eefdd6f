// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Report types and the text format of console and log output.

package session

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
)

// AlgorithmResult is the outcome of one algorithm on one instance.
type AlgorithmResult struct {
	Algorithm coloring.Algorithm
	Colors    int
	Elapsed   time.Duration
	Err       error
}

// InstanceReport is the outcome of one instance. Err is set when the
// instance could not be loaded; Results is then empty.
type InstanceReport struct {
	Name     string
	Path     string
	Vertices int
	Edges    int
	Warnings int
	Results  []AlgorithmResult
	Err      error
}

// Report is the outcome of a session. Skipped instances are not listed.
type Report struct {
	Started   time.Time
	Finished  time.Time
	Instances []InstanceReport
}

// Failed counts instances that could not be loaded.
func (r *Report) Failed() int {
	n := 0
	for _, ir := range r.Instances {
		if ir.Err != nil {
			n++
		}
	}

	return n
}

// bannerTitle prefixes the session start and end banners.
const bannerTitle = "Graph Coloring Algorithms Comparison Session"

// reportWriter formats session text and keeps the first write error.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *reportWriter) writeBanner(phase string, at time.Time) {
	rw.printf("--- %s %s: %s ---\n", bannerTitle, phase, at.Format(time.RFC3339))
}

func (rw *reportWriter) writeProcessing(path string) {
	rw.printf("\nProcessing graph file: '%s'\n", path)
}

func (rw *reportWriter) writeFailed(path string) {
	rw.printf("Failed to read graph from '%s'. Skipping.\n", path)
}

func (rw *reportWriter) writeLoaded(vertices, edges int) {
	rw.printf("  Graph loaded: %d vertices, %d edges.\n", vertices, edges)
}

func (rw *reportWriter) writeResult(ar AlgorithmResult) {
	rw.printf("\n  Algorithm: %s\n", ar.Algorithm)
	if ar.Err != nil {
		rw.printf("    Error:       %v\n", ar.Err)
		return
	}
	rw.printf("    Colors Used: %d\n", ar.Colors)
	rw.printf("    CPU Time:    %.3f ms\n", float64(ar.Elapsed)/float64(time.Millisecond))
}

func (rw *reportWriter) writeDone() {
	rw.printf("\n--- All specified files processed ---\n")
}
