// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suite

import (
	"os"
	"regexp"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/metric"
	"golang.org/x/benchsuite/outcome"
)

// SpecJvm2008 is the SPECjvm2008 harness. One VM invocation may run
// several benchmarks; it runs all of them if none are selected.
type SpecJvm2008 struct {
	base
}

// NewSpecJvm2008 returns the SPECjvm2008 suite. The SPECJVM2008
// environment variable must name the harness directory.
func NewSpecJvm2008(env Environment) *SpecJvm2008 {
	return &SpecJvm2008{base{"specjvm2008", env}}
}

var (
	specJvmSuccess = regexp.MustCompile(`(?m)^(Noncompliant c|C)omposite result: (?P<score>[0-9]+((,|\.)[0-9]+)?)( SPECjvm2008 (Base|Peak))? ops/m$`)
	specJvmFailure = regexp.MustCompile(`(?m)^Errors in benchmark: `)
)

func (s *SpecJvm2008) SingleBenchmark() bool { return false }
func (s *SpecJvm2008) ScratchPrefix() string { return "" }

func (s *SpecJvm2008) WorkingDirectory(run *Run) string {
	return s.env.Getenv("SPECJVM2008")
}

func (s *SpecJvm2008) ValidateEnvironment() error {
	_, err := s.jarIn("SPECJVM2008", "SPECjvm2008.jar")
	return err
}

func (s *SpecJvm2008) BenchmarkList(run *Run) ([]string, error) {
	return append([]string(nil), SpecJvm2008Benchmarks...), nil
}

func (s *SpecJvm2008) CommandLine(run *Run, vmArgs []string) ([]string, error) {
	jar, err := s.jarIn("SPECJVM2008", "SPECjvm2008.jar")
	if err != nil {
		return nil, err
	}
	benchmarks := run.Benchmarks
	if benchmarks == nil {
		benchmarks = SpecJvm2008Benchmarks
	}
	args := append([]string(nil), vmArgs...)
	args = append(args, "-jar", jar)
	args = append(args, run.RunArgs...)
	return append(args, benchmarks...), nil
}

func (s *SpecJvm2008) Patterns() outcome.Patterns {
	return outcome.Patterns{
		Success: []*regexp.Regexp{specJvmSuccess},
		Failure: []*regexp.Regexp{specJvmFailure},
	}
}

func (s *SpecJvm2008) Rules(run *Run, output string) ([]extract.Rule, error) {
	suite := s.name
	if len(run.Benchmarks) == 1 {
		suite += "-single"
	}
	return []extract.Rule{
		extract.MustStreamRule(`^Score on (?P<benchmark>[a-zA-Z0-9\._]+): (?P<score>[0-9]+((,|\.)[0-9]+)?) ops/m$`,
			BaseTemplate(suite).With(extract.Template{
				metric.KeyBenchmark: extract.Source("benchmark", extract.String),
				metric.KeyName:      extract.Literal("throughput"),
				metric.KeyValue:     extract.Source("score", extract.Float),
				metric.KeyUnit:      extract.Literal("op/min"),
				metric.KeyBetter:    extract.Literal("higher"),
				metric.KeyIteration: extract.Literal(0),
			})),
	}, nil
}

// SpecJbb is a SPECjbb harness. These harnesses have a single benchmark,
// "default", which cannot be selected explicitly.
type SpecJbb struct {
	base

	envVar  string
	jars    []string // class path entries, relative to the harness directory
	args    []string // harness arguments after the class path
	jarMain bool     // run with -jar instead of -cp

	success, failure []*regexp.Regexp
	result           string // result line pattern
	metrics          []jbbMetric
}

type jbbMetric struct {
	name, group, unit string
}

// NewSpecJbb2005 returns the SPECjbb2005 suite. The SPECJBB2005
// environment variable must name the harness directory.
func NewSpecJbb2005(env Environment) *SpecJbb {
	return &SpecJbb{
		base:    base{"specjbb2005", env},
		envVar:  "SPECJBB2005",
		jars:    []string{"jbb.jar", "check.jar"},
		args:    []string{"spec.jbb.JBBmain", "-propfile", "SPECjbb.props"},
		success: []*regexp.Regexp{regexp.MustCompile(`(?m)^Valid run, Score is  [0-9]+$`)},
		failure: []*regexp.Regexp{regexp.MustCompile(`(?m)VALIDATION ERROR`)},
		result:  `^Valid run, Score is  (?P<score>[0-9]+)$`,
		metrics: []jbbMetric{{"throughput", "score", "bops"}},
	}
}

// NewSpecJbb2013 returns the SPECjbb2013 suite.
func NewSpecJbb2013(env Environment) *SpecJbb {
	return newSpecJbbComposite(env, "2013")
}

// NewSpecJbb2015 returns the SPECjbb2015 suite.
func NewSpecJbb2015(env Environment) *SpecJbb {
	return newSpecJbbComposite(env, "2015")
}

func newSpecJbbComposite(env Environment, year string) *SpecJbb {
	return &SpecJbb{
		base:    base{"specjbb" + year, env},
		envVar:  "SPECJBB" + year,
		jars:    []string{"specjbb" + year + ".jar"},
		args:    []string{"-m", "composite"},
		jarMain: true,
		success: []*regexp.Regexp{regexp.MustCompile(`(?m)org.spec.jbb.controller: Run finished`)},
		result:  `^RUN RESULT: hbIR \(max attempted\) = [0-9]+, hbIR \(settled\) = [0-9]+, max-jOPS = (?P<max>[0-9]+), critical-jOPS = (?P<critical>[0-9]+)$`,
		metrics: []jbbMetric{{"max", "max", "jops"}, {"critical", "critical", "jops"}},
	}
}

func (s *SpecJbb) SingleBenchmark() bool { return false }
func (s *SpecJbb) ScratchPrefix() string { return "" }

func (s *SpecJbb) WorkingDirectory(run *Run) string {
	return s.env.Getenv(s.envVar)
}

func (s *SpecJbb) classPath() (string, error) {
	cp := ""
	for i, jar := range s.jars {
		path, err := s.jarIn(s.envVar, jar)
		if err != nil {
			return "", err
		}
		if i > 0 {
			cp += string(os.PathListSeparator)
		}
		cp += path
	}
	return cp, nil
}

func (s *SpecJbb) ValidateEnvironment() error {
	_, err := s.classPath()
	return err
}

func (s *SpecJbb) BenchmarkList(run *Run) ([]string, error) {
	return []string{"default"}, nil
}

func (s *SpecJbb) CommandLine(run *Run, vmArgs []string) ([]string, error) {
	if run.Benchmarks != nil {
		return nil, s.configError("", "no benchmark should be specified for this suite")
	}
	cp, err := s.classPath()
	if err != nil {
		return nil, err
	}
	args := append([]string(nil), vmArgs...)
	if s.jarMain {
		args = append(args, "-jar", cp)
	} else {
		args = append(args, "-cp", cp)
	}
	args = append(args, s.args...)
	return append(args, run.RunArgs...), nil
}

func (s *SpecJbb) Patterns() outcome.Patterns {
	return outcome.Patterns{Success: s.success, Failure: s.failure}
}

func (s *SpecJbb) Rules(run *Run, output string) ([]extract.Rule, error) {
	var rules []extract.Rule
	for _, m := range s.metrics {
		rules = append(rules, extract.MustStreamRule(s.result, BaseTemplate(s.name).With(extract.Template{
			metric.KeyBenchmark: extract.Literal("default"),
			metric.KeyName:      extract.Literal(m.name),
			metric.KeyValue:     extract.Source(m.group, extract.Float),
			metric.KeyUnit:      extract.Literal(m.unit),
			metric.KeyBetter:    extract.Literal("higher"),
			metric.KeyIteration: extract.Literal(0),
		})))
	}
	return rules, nil
}

// Renaissance is the Renaissance harness. One VM invocation runs a
// comma-separated list of benchmarks, or "all".
type Renaissance struct {
	base
}

// NewRenaissance returns the Renaissance suite. The RENAISSANCE
// environment variable must name the harness jar.
func NewRenaissance(env Environment) *Renaissance {
	return &Renaissance{base{"renaissance", env}}
}

const (
	renaissanceIteration = `====== (?P<benchmark>[a-zA-Z0-9_]+), iteration (?P<iteration>[0-9]+) completed \((?P<value>[0-9]+) ms\) ======`
	renaissanceFinal     = `====== (?P<benchmark>[a-zA-Z0-9_]+), final iteration completed \((?P<value>[0-9]+) ms\) ======`
)

var renaissanceSuccess = regexp.MustCompile(`(?m)` + renaissanceFinal)

func (s *Renaissance) SingleBenchmark() bool            { return false }
func (s *Renaissance) ScratchPrefix() string            { return "renaissance-work." }
func (s *Renaissance) WorkingDirectory(run *Run) string { return run.ScratchDir }

func (s *Renaissance) ValidateEnvironment() error {
	if s.env.Getenv("RENAISSANCE") == "" {
		return s.envError("the RENAISSANCE environment variable is not set")
	}
	return nil
}

func (s *Renaissance) BenchmarkList(run *Run) ([]string, error) {
	return append([]string(nil), RenaissanceBenchmarks...), nil
}

func (s *Renaissance) CommandLine(run *Run, vmArgs []string) ([]string, error) {
	var bench string
	switch {
	case run.Benchmarks == nil:
		bench = "all"
	case len(run.Benchmarks) == 0:
		return nil, s.configError("", "must specify at least one benchmark")
	default:
		for i, b := range run.Benchmarks {
			if i > 0 {
				bench += ","
			}
			bench += b
		}
	}
	args := append([]string(nil), vmArgs...)
	args = append(args, "-jar", s.env.Getenv("RENAISSANCE"))
	args = append(args, run.RunArgs...)
	return append(args, bench), nil
}

func (s *Renaissance) Patterns() outcome.Patterns {
	return outcome.Patterns{Success: []*regexp.Regexp{renaissanceSuccess}}
}

func (s *Renaissance) Rules(run *Run, output string) ([]extract.Rule, error) {
	t := BaseTemplate(s.name).With(extract.Template{
		metric.KeyBenchmark: extract.Source("benchmark", extract.String),
		metric.KeyValue:     extract.Source("value", extract.Float),
		metric.KeyUnit:      extract.Literal("ms"),
		metric.KeyBetter:    extract.Literal("lower"),
	})
	return []extract.Rule{
		extract.MustStreamRule(renaissanceIteration, t.With(extract.Template{
			metric.KeyName:      extract.Literal("warmup"),
			metric.KeyIteration: extract.Source("iteration", extract.Int),
		})),
		extract.MustStreamRule(renaissanceFinal, t.With(extract.Template{
			metric.KeyName:      extract.Literal("time"),
			metric.KeyIteration: extract.Literal(0),
		})),
	}, nil
}
