// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suite

import (
	"regexp"
	"sort"
	"strconv"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/metric"
	"golang.org/x/benchsuite/outcome"
)

// DaCapo is a DaCapo-style harness. It runs a single benchmark per VM
// invocation, in a scratch directory, and reports each iteration with
// lines of the form
//
//	===== <title> <bench> completed warmup <n> in <ms> msec =====
//	===== <title> <bench> PASSED in <ms> msec =====
//	===== <title> <bench> FAILED <phase> =====
type DaCapo struct {
	base

	// Title is the harness name printed in result lines, such as
	// "DaCapo 9.12".
	Title string

	// EnvVar names the environment variable holding the harness
	// jar. If it is unset, the Library is used.
	EnvVar  string
	Library string

	// Iterations is the iteration count per benchmark. Skip
	// disables a benchmark.
	Iterations map[string]int

	flaky []*regexp.Regexp

	success, failure *regexp.Regexp
	passed, warmup   string // rule patterns
}

// NewDaCapo returns the DaCapo 9.12 (Bach) suite.
func NewDaCapo(env Environment) *DaCapo {
	d := newDaCapo(env, "dacapo", "DaCapo 9.12", "DACAPO_CP", "DACAPO", DaCapoIterations)
	d.flaky = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^javax.ejb.FinderException: Cannot find account for`),
		regexp.MustCompile(`(?m)^java.lang.Exception: TradeDirect:Login failure for user:`),
	}
	return d
}

// NewScalaDaCapo returns the Scala DaCapo suite.
func NewScalaDaCapo(env Environment) *DaCapo {
	return newDaCapo(env, "scala-dacapo", "DaCapo 0.1.0-SNAPSHOT", "DACAPO_SCALA_CP", "DACAPO_SCALA", ScalaDaCapoIterations)
}

func newDaCapo(env Environment, name, title, envVar, lib string, iters map[string]int) *DaCapo {
	t := regexp.QuoteMeta(title)
	return &DaCapo{
		base:       base{name, env},
		Title:      title,
		EnvVar:     envVar,
		Library:    lib,
		Iterations: iters,
		success:    regexp.MustCompile(`(?m)^===== ` + t + ` ([a-zA-Z0-9_]+) PASSED in ([0-9]+) msec =====`),
		failure:    regexp.MustCompile(`(?m)^===== ` + t + ` ([a-zA-Z0-9_]+) FAILED (warmup|) =====`),
		passed:     `===== ` + t + ` (?P<benchmark>[a-zA-Z0-9_]+) PASSED in (?P<time>[0-9]+) msec =====`,
		warmup:     `===== ` + t + ` (?P<benchmark>[a-zA-Z0-9_]+) completed warmup [0-9]+ in (?P<time>[0-9]+) msec =====`,
	}
}

func (d *DaCapo) SingleBenchmark() bool            { return true }
func (d *DaCapo) ScratchPrefix() string            { return "dacapo-work." }
func (d *DaCapo) WorkingDirectory(run *Run) string { return run.ScratchDir }

// Path returns the harness jar, or "" if it is not configured.
func (d *DaCapo) Path() string {
	if p := d.env.Getenv(d.EnvVar); p != "" {
		return p
	}
	return d.env.Library(d.Library)
}

func (d *DaCapo) ValidateEnvironment() error {
	if d.Path() == "" {
		return d.envError("neither %s variable nor %s library specified", d.EnvVar, d.Library)
	}
	return nil
}

func (d *DaCapo) BenchmarkList(run *Run) ([]string, error) {
	var list []string
	for bench := range d.Iterations {
		n, _, err := Iterations(run, d.name, bench, d.Iterations, 0)
		if err == nil && n == Skip {
			continue
		}
		// Benchmarks with bad overrides stay listed so the
		// error is reported against them.
		list = append(list, bench)
	}
	sort.Strings(list)
	return list, nil
}

// runArgs returns the harness arguments for bench with the resolved
// iteration count first, or ErrSkip.
func (d *DaCapo) runArgs(run *Run, bench string) (int, []string, error) {
	n, rest, err := Iterations(run, d.name, bench, d.Iterations, 0)
	if err != nil {
		return 0, nil, err
	}
	if n == Skip {
		return 0, nil, ErrSkip
	}
	return n, append([]string{"-n", strconv.Itoa(n)}, rest...), nil
}

func (d *DaCapo) CommandLine(run *Run, vmArgs []string) ([]string, error) {
	if len(run.Benchmarks) != 1 {
		return nil, d.configError("", "suite runs only a single benchmark, got %q", run.Benchmarks)
	}
	bench := run.Benchmarks[0]
	_, runArgs, err := d.runArgs(run, bench)
	if err != nil {
		return nil, err
	}
	args := append([]string(nil), vmArgs...)
	args = append(args, "-jar", d.Path(), bench)
	return append(args, runArgs...), nil
}

func (d *DaCapo) Patterns() outcome.Patterns {
	return outcome.Patterns{
		Success:      []*regexp.Regexp{d.success},
		Failure:      []*regexp.Regexp{d.failure},
		FlakySuccess: d.flaky,
	}
}

func (d *DaCapo) Rules(run *Run, output string) ([]extract.Rule, error) {
	if len(run.Benchmarks) != 1 {
		return nil, d.configError("", "suite runs only a single benchmark, got %q", run.Benchmarks)
	}
	total, _, err := d.runArgs(run, run.Benchmarks[0])
	if err == ErrSkip {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t := BaseTemplate(d.name).With(extract.Template{
		metric.KeyBenchmark: extract.Source("benchmark", extract.String),
		metric.KeyValue:     extract.Source("time", extract.Int),
		metric.KeyUnit:      extract.Literal("ms"),
		metric.KeyBetter:    extract.Literal("lower"),
	})
	return []extract.Rule{
		extract.MustStreamRule(d.passed, t.With(extract.Template{
			metric.KeyName:      extract.Literal("time"),
			metric.KeyIteration: extract.Literal(0),
		})),
		// The final iteration is also the last warmup iteration.
		extract.MustStreamRule(d.passed, t.With(extract.Template{
			metric.KeyName:      extract.Literal("warmup"),
			metric.KeyIteration: extract.Literal(total - 1),
		})),
		extract.MustStreamRule(d.warmup, t.With(extract.Template{
			metric.KeyName:      extract.Literal("warmup"),
			metric.KeyIteration: extract.Iteration(),
		})),
	}, nil
}
