// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: Runner, the session loop.

package session

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/dimacs"
)

// Runner executes one session configuration.
type Runner struct {
	cfg  Config
	out  io.Writer
	now  func() time.Time
	load func(path string) (*dimacs.Instance, error)
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithClock replaces time.Now for banner timestamps. nil is ignored.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLoader replaces dimacs.Load for reading instances. nil is ignored.
func WithLoader(load func(path string) (*dimacs.Instance, error)) RunnerOption {
	return func(r *Runner) {
		if load != nil {
			r.load = load
		}
	}
}

// NewRunner validates cfg and returns a Runner echoing to out.
// A nil out discards console output; the log file is still written.
func NewRunner(cfg Config, out io.Writer, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = io.Discard
	}
	r := &Runner{cfg: cfg, out: out, now: time.Now, load: dimacs.Load}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Run executes the session and returns its Report.
//
// Per-instance and per-algorithm failures are recorded in the Report and do
// not stop the session. Run returns an error only when the log file cannot
// be opened, output cannot be written, or ctx is done; the partial Report
// is returned alongside in the latter two cases.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	logf, err := os.OpenFile(r.cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "session: open log file %q", r.cfg.LogFile)
	}
	defer logf.Close()

	rw := &reportWriter{w: io.MultiWriter(r.out, logf)}
	report := &Report{Started: r.now()}
	rw.writeBanner("Start", report.Started)
	klog.Infof("session started: %d instances, algorithms %v", len(r.cfg.Instances), r.cfg.Algorithms)

	runErr := r.runInstances(ctx, rw, report)

	rw.writeDone()
	report.Finished = r.now()
	rw.writeBanner("End", report.Finished)
	klog.Infof("session finished: %d instances reported, %d failed", len(report.Instances), report.Failed())

	if runErr != nil {
		return report, runErr
	}
	if rw.err != nil {
		return report, errors.Wrap(rw.err, "session: write output")
	}

	return report, nil
}

// runInstances processes the configured instances in order.
func (r *Runner) runInstances(ctx context.Context, rw *reportWriter, report *Report) error {
	for _, inst := range r.cfg.Instances {
		if inst.Skip {
			klog.V(1).Infof("skipping instance %s", inst.Name)
			continue
		}
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "session: interrupted")
		}

		ir, err := r.runInstance(ctx, rw, inst)
		report.Instances = append(report.Instances, ir)
		if err != nil {
			return err
		}
	}

	return nil
}

// runInstance loads one instance and runs every algorithm on it.
func (r *Runner) runInstance(ctx context.Context, rw *reportWriter, inst Instance) (InstanceReport, error) {
	path := inst.Resolve(r.cfg.GraphsDir)
	ir := InstanceReport{Name: inst.Name, Path: path}
	rw.writeProcessing(path)

	loaded, err := r.load(path)
	if err != nil {
		klog.Errorf("load %s: %v", path, err)
		rw.writeFailed(path)
		ir.Err = err
		return ir, nil
	}

	g := loaded.Graph
	ir.Vertices, ir.Edges, ir.Warnings = g.VertexCount(), g.EdgeCount(), len(loaded.Warnings)
	for _, w := range loaded.Warnings {
		klog.Warningf("%s: %s", path, w)
	}
	if ir.Edges != loaded.DeclaredEdges {
		klog.Warningf("%s: header declares %d edges, loaded %d", path, loaded.DeclaredEdges, ir.Edges)
	}
	rw.writeLoaded(ir.Vertices, ir.Edges)

	for _, alg := range r.cfg.Algorithms {
		if err = ctx.Err(); err != nil {
			return ir, errors.Wrap(err, "session: interrupted")
		}
		ar := r.runAlgorithm(inst.Name, loaded, alg)
		ir.Results = append(ir.Results, ar)
		rw.writeResult(ar)
	}

	return ir, nil
}

// runAlgorithm colors the instance graph with alg.
func (r *Runner) runAlgorithm(name string, loaded *dimacs.Instance, alg coloring.Algorithm) AlgorithmResult {
	opts := []coloring.Option{
		coloring.WithOnAssign(func(id, color int) {
			klog.V(3).Infof("%s %s: vertex %d <- color %d", name, alg, id, color)
		}),
	}
	if r.cfg.Verify {
		opts = append(opts, coloring.WithVerify())
	}

	res, err := coloring.Run(loaded.Graph, alg, opts...)
	if err != nil {
		klog.Errorf("%s: %v", name, err)
		return AlgorithmResult{Algorithm: alg, Err: err}
	}
	klog.V(2).Infof("%s %s: %d colors in %s", name, alg, res.ColorCount, res.Elapsed)

	return AlgorithmResult{Algorithm: alg, Colors: res.ColorCount, Elapsed: res.Elapsed}
}
