// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/dimacs"
	"github.com/katalvlaran/lvcolor/session"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options holds the parsed command line.
type options struct {
	configPath string
	dir        string
	logFile    string
	algorithms string
	verify     bool

	fetch string

	generate string
	n, m     int
	p        float64
	seed     int64
	out      string

	files []string
	set   map[string]bool
}

// parseArgs parses args into options. It returns (nil, nil) when help was requested.
func parseArgs(args []string, output io.Writer) (*options, error) {
	fset := flag.NewFlagSet("lvcolor", flag.ContinueOnError)
	fset.SetOutput(output)
	klog.InitFlags(fset)

	fset.Usage = func() {
		fmt.Fprintf(output, `
lvcolor - greedy graph coloring benchmark (IDO, DSATUR, RLF).

Usage:
  lvcolor [options] [INSTANCE.col ...]
  lvcolor -fetch URL [-dir DIR]
  lvcolor -generate KIND -n N [-m M] [-p P] [-seed S] [-out FILE]

Without instance arguments the session runs the instances of -config, or
the default DIMACS set under -dir.

Generator kinds: %s

Options:
`, strings.Join(generatorKinds(), ", "))
		fset.PrintDefaults()
	}

	o := &options{set: make(map[string]bool)}
	fset.StringVar(&o.configPath, "config", "", "Path to an HCL session file.")
	fset.StringVar(&o.dir, "dir", session.DefaultGraphsDir, "Directory holding DIMACS instances.")
	fset.StringVar(&o.logFile, "log", session.DefaultLogFile, "Results log, opened in append mode.")
	fset.StringVar(&o.algorithms, "algorithms", "IDO,DSATUR,RLF", "Comma-separated algorithms to run.")
	fset.BoolVar(&o.verify, "verify", false, "Verify every coloring after it is computed.")
	fset.StringVar(&o.fetch, "fetch", "", "Download a DIMACS instance from URL into -dir and exit.")
	fset.StringVar(&o.generate, "generate", "", "Write a generated graph of the given kind and exit.")
	fset.IntVar(&o.n, "n", 10, "Generator size parameter.")
	fset.IntVar(&o.m, "m", 0, "Second generator size: bipartite right side or grid columns (0 means n).")
	fset.Float64Var(&o.p, "p", 0.5, "Edge probability for -generate random.")
	fset.Int64Var(&o.seed, "seed", 1, "Random seed for -generate random.")
	fset.StringVar(&o.out, "out", "", "Output file for -generate (default stdout).")

	if err := fset.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, nil
		}
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	fset.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	o.files = fset.Args()

	if o.fetch != "" && o.generate != "" {
		return nil, &ExitError{Code: 2, Message: "-fetch and -generate are mutually exclusive"}
	}

	return o, nil
}

// parseAlgorithms resolves a comma-separated algorithm list.
func parseAlgorithms(list string) ([]coloring.Algorithm, error) {
	var algs []coloring.Algorithm
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		alg, err := coloring.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}

	return algs, nil
}

// run encapsulates the command logic for testing and error handling.
func run(ctx context.Context, out io.Writer, args []string) error {
	o, err := parseArgs(args, out)
	if err != nil {
		return err
	}
	if o == nil {
		return nil
	}
	defer klog.Flush()

	switch {
	case o.generate != "":
		return runGenerate(out, o)
	case o.fetch != "":
		path, err := dimacs.Download(ctx, nil, o.fetch, o.dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Content successfully saved to: %s\n", path)
		return nil
	default:
		return runSession(ctx, out, o)
	}
}

// sessionConfig merges the config file, explicit flags and file arguments.
func sessionConfig(o *options) (session.Config, error) {
	cfg := session.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = session.LoadConfig(o.configPath); err != nil {
			return session.Config{}, err
		}
	}

	if o.set["dir"] {
		cfg.GraphsDir = o.dir
	}
	if o.set["log"] {
		cfg.LogFile = o.logFile
	}
	if o.set["verify"] {
		cfg.Verify = o.verify
	}
	if o.set["algorithms"] {
		algs, err := parseAlgorithms(o.algorithms)
		if err != nil {
			return session.Config{}, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Algorithms = algs
	}
	if len(o.files) > 0 {
		cfg.Instances = make([]session.Instance, 0, len(o.files))
		for _, f := range o.files {
			abs, err := filepath.Abs(f)
			if err != nil {
				return session.Config{}, errors.Wrapf(err, "resolve %s", f)
			}
			cfg.Instances = append(cfg.Instances, session.Instance{Name: f, Path: abs})
		}
	}

	return cfg, nil
}

// runSession runs the benchmark session.
func runSession(ctx context.Context, out io.Writer, o *options) error {
	cfg, err := sessionConfig(o)
	if err != nil {
		return err
	}
	runner, err := session.NewRunner(cfg, out)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if failed := report.Failed(); failed > 0 {
		klog.Warningf("%d of %d instances could not be read", failed, len(report.Instances))
	}

	return nil
}
