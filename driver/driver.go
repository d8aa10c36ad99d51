// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver runs benchmark suites.
//
// For every process a suite needs, the driver builds the command line
// under an execution profile, runs it through an Executor, classifies
// the outcome, and extracts metric records from the output and the
// sidecar files left in the working directory. Processes run strictly
// one after another.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/metric"
	"golang.org/x/benchsuite/outcome"
	"golang.org/x/benchsuite/profile"
	"golang.org/x/benchsuite/suite"
)

// A Driver runs suites.
type Driver struct {
	Executor Executor

	// Logger receives progress messages. If nil, slog.Default()
	// is used.
	Logger *slog.Logger

	// Java is the launcher prepended to every command line. The
	// default is "java".
	Java string

	// ScratchDir is the parent of scratch directories. The default
	// is os.TempDir().
	ScratchDir string
}

// A BenchmarkResult is the result of one benchmark process.
type BenchmarkResult struct {
	Suite string

	// Benchmarks are the benchmarks the process ran. nil means the
	// harness' default selection.
	Benchmarks []string

	// Args is the full command line, or nil if the process was
	// never started.
	Args []string

	Outcome outcome.Outcome

	// Records are the extracted metrics. A failed benchmark may
	// still have records.
	Records []metric.Record

	// ExtractErrs are the errors of extraction rules that failed.
	ExtractErrs []error
}

// Name returns a display name of the benchmarks of r.
func (r *BenchmarkResult) Name() string {
	if r.Benchmarks == nil {
		return r.Suite + ":*"
	}
	return r.Suite + ":" + strings.Join(r.Benchmarks, ",")
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Run runs the benchmarks of run.Benchmarks (all of them if nil) of s
// under prof, which may be nil.
//
// An *suite.EnvironmentError aborts the whole run before any process
// is started. A *suite.ConfigurationError fails only the benchmark it
// concerns. Skipped benchmarks produce no result.
func (d *Driver) Run(ctx context.Context, s suite.Suite, prof *profile.Profile, run *suite.Run) ([]BenchmarkResult, error) {
	log := d.logger().With("suite", s.Name())
	if err := s.ValidateEnvironment(); err != nil {
		return nil, err
	}

	if prefix := s.ScratchPrefix(); prefix != "" {
		dir, err := os.MkdirTemp(d.ScratchDir, prefix)
		if err != nil {
			return nil, fmt.Errorf("creating scratch directory: %w", err)
		}
		run = run.WithBenchmarks(run.Benchmarks)
		run.ScratchDir = dir
		defer func() {
			if run.KeepScratch {
				log.Info("keeping scratch directory", "dir", dir)
				return
			}
			if rerr := os.RemoveAll(dir); rerr != nil {
				log.Error("removing scratch directory", "dir", dir, "error", rerr)
			}
		}()
	}

	runs, err := invocations(s, run)
	if err != nil {
		return nil, err
	}
	var results []BenchmarkResult
	for _, r := range runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := d.invoke(ctx, log, s, prof, r)
		if errors.Is(err, suite.ErrSkip) {
			log.Info("skipped", "benchmarks", r.Benchmarks)
			continue
		}
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// invocations splits run into the runs of individual processes.
func invocations(s suite.Suite, run *suite.Run) ([]*suite.Run, error) {
	if !s.SingleBenchmark() {
		return []*suite.Run{run}, nil
	}
	benchmarks := run.Benchmarks
	if benchmarks == nil {
		var err error
		if benchmarks, err = s.BenchmarkList(run); err != nil {
			return nil, err
		}
	}
	runs := make([]*suite.Run, len(benchmarks))
	for i, b := range benchmarks {
		runs[i] = run.WithBenchmarks([]string{b})
	}
	return runs, nil
}

// invoke runs one process. It returns suite.ErrSkip for skipped
// benchmarks, and other errors only if the whole run must stop.
//
// A process the executor gave up on, such as one killed by a timeout,
// fails, but its partial output and sidecar files are still
// classified and extracted.
func (d *Driver) invoke(ctx context.Context, log *slog.Logger, s suite.Suite, prof *profile.Profile, run *suite.Run) (BenchmarkResult, error) {
	res := BenchmarkResult{Suite: s.Name(), Benchmarks: run.Benchmarks}
	fail := func(err error) (BenchmarkResult, error) {
		log.Error("benchmark failed", "benchmarks", res.Benchmarks, "error", err)
		res.Outcome = outcome.Outcome{Kind: outcome.Failure, Err: err}
		return res, nil
	}

	args, err := suite.CommandLine(s, run)
	var cerr *suite.ConfigurationError
	switch {
	case errors.Is(err, suite.ErrSkip):
		return res, err
	case errors.As(err, &cerr):
		return fail(err)
	case err != nil:
		return res, err
	}
	if prof != nil {
		args = prof.CommandLine(args)
	}
	java := d.Java
	if java == "" {
		java = "java"
	}
	res.Args = append([]string{java}, args...)

	dir := s.WorkingDirectory(run)
	log.Info("running", "benchmarks", res.Benchmarks, "dir", dir)
	log.Debug("command", "args", res.Args)
	pr, runErr := d.Executor.Run(ctx, Command{Args: res.Args, Dir: dir})
	if runErr != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		if pr.Output == "" {
			// The process never produced anything.
			return fail(runErr)
		}
		log.Warn("benchmark process did not complete", "benchmarks", res.Benchmarks, "error", runErr)
	}

	res.Outcome = outcome.Classify(pr.Output, pr.ExitCode, s.ValidateReturnCode(pr.ExitCode), s.Patterns())
	if runErr != nil {
		// A killed process fails even if its output looks good.
		res.Outcome.Kind = outcome.Failure
		res.Outcome.Flaky = nil
		res.Outcome.Err = runErr
	}
	rules, err := s.Rules(run, pr.Output)
	res.Records, res.ExtractErrs = extract.Apply(rules, extract.Input{Output: pr.Output, Dir: dir})
	if err != nil {
		res.ExtractErrs = append([]error{err}, res.ExtractErrs...)
	}
	if prof != nil {
		dims := prof.Dimensions()
		for i := range res.Records {
			res.Records[i].SetDims(dims)
		}
	}
	for _, e := range res.ExtractErrs {
		log.Warn("extraction error", "benchmarks", res.Benchmarks, "error", e)
	}

	if res.Outcome.Failed() {
		log.Error("benchmark failed", "benchmarks", res.Benchmarks, "outcome", res.Outcome.String(), "exit", pr.ExitCode)
	} else {
		log.Info("benchmark passed", "benchmarks", res.Benchmarks, "records", len(res.Records))
	}
	return res, nil
}
