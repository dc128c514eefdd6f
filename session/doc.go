// SPDX-License-Identifier: MIT

// Package session runs benchmark sessions: every configured DIMACS instance
// is loaded and colored by every configured algorithm, and the outcome is
// appended to a results log and echoed to the console.
//
// What:
//
//   - Config / DefaultConfig / LoadConfig / ParseConfig: session settings,
//     optionally decoded from an HCL file.
//   - Runner.Run(ctx): the session loop; returns a structured Report.
//
// Config file:
//
//	graphs_dir = "DIMACS_Graphs_Instances"
//	log_file   = "${cwd}/results.log"
//	algorithms = ["IDO", "DSATUR", "RLF"]
//	verify     = true
//
//	instance "dsjc250.5.col" {}
//	instance "flat300" {
//	  path = "${home}/graphs/flat300_28_0.col"
//	  skip = true
//	}
//
// Expressions may reference cwd, home and config_dir. An instance without
// a path is looked up as graphs_dir/<name>.
//
// Behavior:
//
//   - The log file is opened in append mode; each session is framed by
//     start and end banners carrying a timestamp.
//   - An instance that fails to load is reported and skipped; the session
//     continues with the next one.
//   - Algorithms run in configured order on the same graph; each run resets
//     the colors first.
//   - Context cancellation is checked between instances and between
//     algorithm runs; a single run is never interrupted.
//
// Logging goes through klog: load warnings at Warning level, skips at V(1),
// each color assignment at V(3).
package session
