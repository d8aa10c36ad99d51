// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suite

import "strconv"

// A Run is the context of one invocation of a suite.
//
// The driver creates a Run from the user's arguments, fills in the
// benchmarks and scratch directory, and passes it to every Suite
// method. Suites must not modify it.
type Run struct {
	// Benchmarks are the benchmarks for one process. nil means
	// the harness' default selection, usually everything.
	Benchmarks []string

	// VMArgs are the user-supplied VM flags.
	VMArgs []string

	// RunArgs are the user-supplied harness arguments.
	RunArgs []string

	// ScratchDir is the suite run's scratch directory, if the
	// suite uses one.
	ScratchDir string

	// KeepScratch requests that ScratchDir is not deleted after
	// the suite run.
	KeepScratch bool
}

// ParseArgs parses suite arguments of the form
//
//	[VM flags] [-- harness arguments]
//
// The suite flag --keep-scratch may appear among the VM flags.
func ParseArgs(args []string) *Run {
	run := &Run{VMArgs: []string{}, RunArgs: []string{}}
	for i, arg := range args {
		if arg == "--" {
			run.RunArgs = append(run.RunArgs, args[i+1:]...)
			break
		}
		if arg == "--keep-scratch" {
			run.KeepScratch = true
			continue
		}
		run.VMArgs = append(run.VMArgs, arg)
	}
	return run
}

// WithBenchmarks returns a copy of run for the given benchmarks.
func (run *Run) WithBenchmarks(benchmarks []string) *Run {
	r := *run
	r.Benchmarks = benchmarks
	return &r
}

// Benchmark returns the single benchmark of run, or "" if run does not
// have exactly one.
func (run *Run) Benchmark() string {
	if len(run.Benchmarks) != 1 {
		return ""
	}
	return run.Benchmarks[0]
}

// Skip is the iteration count that means "do not run".
const Skip = -1

// Iterations resolves the iteration count of bench from, in order of
// precedence, a "-n N" harness argument, the static table and dflt.
// It returns the remaining harness arguments with any "-n N" removed.
// A count of Skip at any level skips the benchmark.
func Iterations(run *Run, suite, bench string, table map[string]int, dflt int) (n int, rest []string, err error) {
	override := ""
	found := false
	for i := 0; i < len(run.RunArgs); i++ {
		arg := run.RunArgs[i]
		if arg == "-n" && !found {
			if i+1 >= len(run.RunArgs) {
				return 0, nil, &ConfigurationError{suite, bench, "-n requires an iteration count"}
			}
			override, found = run.RunArgs[i+1], true
			i++
			continue
		}
		rest = append(rest, arg)
	}
	if found {
		n, err := strconv.Atoi(override)
		if err != nil || (n < 1 && n != Skip) {
			return 0, nil, &ConfigurationError{suite, bench, "invalid iteration count " + strconv.Quote(override)}
		}
		return n, rest, nil
	}
	if n, ok := table[bench]; ok {
		return n, rest, nil
	}
	if dflt == 0 {
		return 0, nil, &ConfigurationError{suite, bench, "unknown benchmark"}
	}
	return dflt, rest, nil
}
