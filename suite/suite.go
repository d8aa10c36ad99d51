// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suite defines the contract every benchmark harness
// implements, and the harnesses themselves.
//
// A Suite describes how to run one third-party benchmark harness: how
// to check that the harness is installed, which benchmarks it offers,
// how to build a command line for them, how to tell from the output
// whether a run succeeded, and which extraction rules turn the output
// into metric records.
//
// Suites hold no per-run state. Everything specific to one run (the
// selected benchmarks, user-supplied arguments, the scratch directory)
// travels in a *Run, which the driver threads through every call.
package suite

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/outcome"
)

// A Suite describes one benchmark harness.
type Suite interface {
	// Name is the unique suite name, e.g. "dacapo".
	Name() string
	Group() string
	Subgroup() string

	// SingleBenchmark reports whether the harness runs exactly one
	// benchmark per process. If not, one process may run several
	// benchmarks, or all of them when Run.Benchmarks is nil.
	SingleBenchmark() bool

	// ScratchPrefix returns the name prefix of the scratch
	// directory the suite runs in, or "" if it needs none.
	ScratchPrefix() string

	// ValidateEnvironment checks that the harness' external
	// resources are present. It returns an *EnvironmentError if
	// not. It is called before any process is started.
	ValidateEnvironment() error

	// BenchmarkList returns the runnable benchmarks, omitting those
	// that run would skip.
	BenchmarkList(run *Run) ([]string, error)

	// WorkingDirectory returns the directory the process runs in,
	// or "" for the current directory.
	WorkingDirectory(run *Run) string

	// VMArgs returns the VM flags for run.
	VMArgs(run *Run) ([]string, error)

	// CommandLine returns the argument vector for run, given the
	// VM flags computed by the outermost VMArgs. It returns ErrSkip
	// if the benchmark should not run at all.
	CommandLine(run *Run, vmArgs []string) ([]string, error)

	// ValidateReturnCode reports whether the exit code is accepted.
	ValidateReturnCode(code int) bool

	// Patterns returns the outcome classification patterns.
	Patterns() outcome.Patterns

	// Rules returns the extraction rules for the output of run.
	Rules(run *Run, output string) ([]extract.Rule, error)
}

// ErrSkip is returned by Suite.CommandLine when a benchmark must not be
// run. A skipped benchmark produces no outcome and no metrics.
var ErrSkip = errors.New("benchmark skipped")

// CommandLine builds the full argument vector for run using s's own VM
// flags.
func CommandLine(s Suite, run *Run) ([]string, error) {
	vmArgs, err := s.VMArgs(run)
	if err != nil {
		return nil, err
	}
	return s.CommandLine(run, vmArgs)
}

// An EnvironmentError reports that an external resource a suite needs
// is missing.
type EnvironmentError struct {
	Suite string
	Msg   string
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Suite, e.Msg)
}

// A ConfigurationError reports an invalid request, such as a
// malformed iteration override. It affects a single benchmark.
type ConfigurationError struct {
	Suite     string
	Benchmark string // may be ""
	Msg       string
}

func (e *ConfigurationError) Error() string {
	if e.Benchmark != "" {
		return fmt.Sprintf("%s:%s: %s", e.Suite, e.Benchmark, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Suite, e.Msg)
}

// An Environment gives suites access to the machine they run on.
type Environment interface {
	// Getenv returns the value of an environment variable, or "".
	Getenv(key string) string
	// Library returns the path of a configured library, or "".
	Library(name string) string
	// Exists reports whether path exists.
	Exists(path string) bool
}

// OSEnvironment is an Environment backed by the process environment
// and a table of configured library paths.
type OSEnvironment struct {
	Libraries map[string]string
}

func (e OSEnvironment) Getenv(key string) string   { return os.Getenv(key) }
func (e OSEnvironment) Library(name string) string { return e.Libraries[name] }

func (e OSEnvironment) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// A Registry maps suite names to suites.
//
// The zero Registry is empty and ready to use.
type Registry struct {
	suites map[string]Suite
}

// Add registers s under s.Name().
func (r *Registry) Add(s Suite) error {
	if r.suites == nil {
		r.suites = make(map[string]Suite)
	}
	if _, ok := r.suites[s.Name()]; ok {
		return fmt.Errorf("suite %s already registered", s.Name())
	}
	r.suites[s.Name()] = s
	return nil
}

// Get returns the suite with the given name.
func (r *Registry) Get(name string) (Suite, bool) {
	s, ok := r.suites[name]
	return s, ok
}

// Names returns the registered suite names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.suites))
	for name := range r.suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseSelector splits a "suite:bench1,bench2" selector. A missing or
// "*" benchmark part selects every benchmark and yields nil.
func ParseSelector(sel string) (suite string, benchmarks []string) {
	suite, list, ok := strings.Cut(sel, ":")
	if !ok || list == "" || list == "*" {
		return suite, nil
	}
	return suite, strings.Split(list, ",")
}

var (
	_ Suite = (*DaCapo)(nil)
	_ Suite = (*SpecJvm2008)(nil)
	_ Suite = (*SpecJbb)(nil)
	_ Suite = (*Renaissance)(nil)
)
