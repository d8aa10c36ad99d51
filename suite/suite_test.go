// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/metric"
	"golang.org/x/benchsuite/outcome"
)

// fakeEnv is an Environment for tests.
type fakeEnv struct {
	vars  map[string]string
	libs  map[string]string
	files map[string]bool
}

func (e fakeEnv) Getenv(key string) string   { return e.vars[key] }
func (e fakeEnv) Library(name string) string { return e.libs[name] }
func (e fakeEnv) Exists(path string) bool    { return e.files[path] }

var dacapoEnv = fakeEnv{vars: map[string]string{"DACAPO_CP": "/opt/dacapo.jar"}}

func TestParseArgs(t *testing.T) {
	run := ParseArgs([]string{"-Xmx1g", "--keep-scratch", "-esa", "--", "-n", "5", "--keep-scratch"})
	assert.Equal(t, []string{"-Xmx1g", "-esa"}, run.VMArgs)
	assert.Equal(t, []string{"-n", "5", "--keep-scratch"}, run.RunArgs)
	assert.True(t, run.KeepScratch)

	run = ParseArgs(nil)
	assert.Empty(t, run.VMArgs)
	assert.Empty(t, run.RunArgs)
	assert.False(t, run.KeepScratch)
}

func TestParseSelector(t *testing.T) {
	for _, tc := range []struct {
		sel   string
		suite string
		bench []string
	}{
		{"dacapo", "dacapo", nil},
		{"dacapo:*", "dacapo", nil},
		{"dacapo:", "dacapo", nil},
		{"dacapo:avrora", "dacapo", []string{"avrora"}},
		{"specjvm2008:compress,derby", "specjvm2008", []string{"compress", "derby"}},
	} {
		s, b := ParseSelector(tc.sel)
		assert.Equal(t, tc.suite, s, tc.sel)
		assert.Equal(t, tc.bench, b, tc.sel)
	}
}

func TestIterationResolution(t *testing.T) {
	table := map[string]int{"avrora": 20, "eclipse": Skip}
	d := newDaCapo(dacapoEnv, "dacapo", "DaCapo 9.12", "DACAPO_CP", "DACAPO", table)

	for _, tc := range []struct {
		name     string
		bench    string
		runArgs  []string
		wantTail []string // nil means skip
	}{
		{"override", "avrora", []string{"-n", "5", "-s", "large"}, []string{"-n", "5", "-s", "large"}},
		{"override skip", "avrora", []string{"-n", "-1"}, nil},
		{"table skip", "eclipse", nil, nil},
		{"table", "avrora", nil, []string{"-n", "20"}},
		{"table keeps args", "avrora", []string{"-s", "small"}, []string{"-n", "20", "-s", "small"}},
		{"override beats table skip", "eclipse", []string{"-n", "3"}, []string{"-n", "3"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			run := &Run{Benchmarks: []string{tc.bench}, RunArgs: tc.runArgs}
			args, err := CommandLine(d, run)
			if tc.wantTail == nil {
				assert.ErrorIs(t, err, ErrSkip)
				assert.Nil(t, args)
				return
			}
			require.NoError(t, err)
			prefix := []string{"-jar", "/opt/dacapo.jar", tc.bench}
			assert.Equal(t, append(prefix, tc.wantTail...), args)
		})
	}
}

func TestIterationErrors(t *testing.T) {
	d := NewDaCapo(dacapoEnv)
	for _, runArgs := range [][]string{
		{"-n", "five"},
		{"-n", "0"},
		{"-n", "-3"},
		{"-n"},
	} {
		_, err := CommandLine(d, &Run{Benchmarks: []string{"avrora"}, RunArgs: runArgs})
		var ce *ConfigurationError
		assert.True(t, errors.As(err, &ce), "%q: got %v", runArgs, err)
	}
	_, err := CommandLine(d, &Run{Benchmarks: []string{"nosuchbench"}})
	var ce *ConfigurationError
	assert.True(t, errors.As(err, &ce))

	// The default applies to benchmarks missing from the table.
	n, _, err := Iterations(&Run{}, "x", "new", nil, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestDaCapoSingleBenchmark(t *testing.T) {
	d := NewDaCapo(dacapoEnv)
	for _, b := range [][]string{nil, {}, {"avrora", "fop"}} {
		_, err := CommandLine(d, &Run{Benchmarks: b})
		var ce *ConfigurationError
		assert.True(t, errors.As(err, &ce))
	}
}

func TestDaCapoBenchmarkList(t *testing.T) {
	d := NewDaCapo(dacapoEnv)
	list, err := d.BenchmarkList(&Run{})
	require.NoError(t, err)
	assert.Equal(t, []string{"avrora", "batik", "fop", "h2", "jython", "luindex", "lusearch", "pmd", "sunflow", "xalan"}, list)

	list, err = d.BenchmarkList(&Run{RunArgs: []string{"-n", "-1"}})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDaCapoValidateEnvironment(t *testing.T) {
	var ee *EnvironmentError
	assert.True(t, errors.As(NewDaCapo(fakeEnv{}).ValidateEnvironment(), &ee))
	assert.NoError(t, NewDaCapo(dacapoEnv).ValidateEnvironment())

	// The library is the fallback.
	d := NewScalaDaCapo(fakeEnv{libs: map[string]string{"DACAPO_SCALA": "/lib/scala.jar"}})
	require.NoError(t, d.ValidateEnvironment())
	args, err := CommandLine(d, &Run{Benchmarks: []string{"scalac"}, VMArgs: []string{"-Xss2m"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"-Xss2m", "-jar", "/lib/scala.jar", "scalac", "-n", "20"}, args)
}

func TestDaCapoEndToEnd(t *testing.T) {
	d := NewDaCapo(dacapoEnv)
	run := &Run{Benchmarks: []string{"avrora"}}
	out := "===== DaCapo 9.12 avrora starting =====\n" +
		"===== DaCapo 9.12 avrora PASSED in 4321 msec =====\n"

	o := outcome.Classify(out, 0, d.ValidateReturnCode(0), d.Patterns())
	assert.Equal(t, outcome.Success, o.Kind)

	rules, err := d.Rules(run, out)
	require.NoError(t, err)
	recs, errs := extract.Apply(rules, extract.Input{Output: out})
	require.Empty(t, errs)
	require.Len(t, recs, 2)

	assert.Equal(t, "time", recs[0].Name)
	assert.Equal(t, 0, recs[0].Iteration)
	assert.Equal(t, 4321.0, recs[0].Value)
	assert.Equal(t, "warmup", recs[1].Name)
	assert.Equal(t, 19, recs[1].Iteration)
	assert.Equal(t, 4321.0, recs[1].Value)
	for _, r := range recs {
		assert.Equal(t, "avrora", r.Benchmark)
		assert.Equal(t, "dacapo", r.BenchSuite)
		assert.Equal(t, "jvmci", r.VM)
		assert.Equal(t, "ms", r.Unit)
		assert.Equal(t, metric.Lower, r.Better)
	}
}

func TestDaCapoWarmupIterations(t *testing.T) {
	d := NewDaCapo(dacapoEnv)
	run := &Run{Benchmarks: []string{"fop"}, RunArgs: []string{"-n", "3"}}
	out := "===== DaCapo 9.12 fop completed warmup 1 in 900 msec =====\n" +
		"===== DaCapo 9.12 fop completed warmup 2 in 800 msec =====\n" +
		"===== DaCapo 9.12 fop PASSED in 700 msec =====\n"
	rules, err := d.Rules(run, out)
	require.NoError(t, err)
	recs, errs := extract.Apply(rules, extract.Input{Output: out})
	require.Empty(t, errs)

	type it struct {
		name string
		iter int
		v    float64
	}
	var got []it
	for _, r := range recs {
		got = append(got, it{r.Name, r.Iteration, r.Value})
	}
	assert.Equal(t, []it{{"time", 0, 700}, {"warmup", 2, 700}, {"warmup", 0, 900}, {"warmup", 1, 800}}, got)
}

func TestDaCapoFailure(t *testing.T) {
	d := NewDaCapo(dacapoEnv)
	p := d.Patterns()
	assert.Equal(t, outcome.Failure, outcome.Classify("===== DaCapo 9.12 h2 FAILED warmup =====\n", 0, true, p).Kind)
	o := outcome.Classify("===== DaCapo 9.12 tradebeans FAILED  =====\n"+
		"java.lang.Exception: TradeDirect:Login failure for user: uid:0\n", 0, true, p)
	assert.Equal(t, outcome.Success, o.Kind)
	assert.NotNil(t, o.Flaky)

	// Scala DaCapo has no flaky patterns and its own title.
	s := NewScalaDaCapo(dacapoEnv).Patterns()
	assert.Empty(t, s.FlakySuccess)
	assert.Equal(t, outcome.NoEvidence, outcome.Classify("===== DaCapo 9.12 h2 PASSED in 1 msec =====\n", 0, true, s).Kind)
}

func TestSpecJvm2008(t *testing.T) {
	dir := t.TempDir()
	jar := filepath.Join(dir, "SPECjvm2008.jar")
	env := fakeEnv{vars: map[string]string{"SPECJVM2008": dir}, files: map[string]bool{jar: true}}
	s := NewSpecJvm2008(env)
	require.NoError(t, s.ValidateEnvironment())
	assert.Equal(t, dir, s.WorkingDirectory(&Run{}))

	args, err := CommandLine(s, &Run{VMArgs: []string{"-Xmx2g"}, RunArgs: []string{"-ikv"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"-Xmx2g", "-jar", jar, "-ikv"}, args[:4])
	assert.Equal(t, SpecJvm2008Benchmarks, args[4:])

	out := "Score on compress: 12,5 ops/m\nScore on derby: 100.25 ops/m\nComposite result: 55.1 SPECjvm2008 Base ops/m\n"
	assert.Equal(t, outcome.Success, outcome.Classify(out, 0, true, s.Patterns()).Kind)
	assert.Equal(t, outcome.Failure, outcome.Classify("Errors in benchmark: compress\n", 0, true, s.Patterns()).Kind)

	for _, tc := range []struct {
		benchmarks []string
		suite      string
	}{
		{nil, "specjvm2008"},
		{[]string{"compress"}, "specjvm2008-single"},
	} {
		rules, err := s.Rules(&Run{Benchmarks: tc.benchmarks}, out)
		require.NoError(t, err)
		recs, errs := extract.Apply(rules, extract.Input{Output: out})
		require.Empty(t, errs)
		require.Len(t, recs, 2)
		assert.Equal(t, 12.5, recs[0].Value)
		assert.Equal(t, 100.25, recs[1].Value)
		assert.Equal(t, metric.Higher, recs[0].Better)
		assert.Equal(t, "op/min", recs[0].Unit)
		assert.Equal(t, tc.suite, recs[0].BenchSuite)
	}

	var ee *EnvironmentError
	assert.True(t, errors.As(NewSpecJvm2008(fakeEnv{}).ValidateEnvironment(), &ee))
	missingJar := fakeEnv{vars: map[string]string{"SPECJVM2008": dir}}
	assert.True(t, errors.As(NewSpecJvm2008(missingJar).ValidateEnvironment(), &ee))
}

func TestSpecJbb2005(t *testing.T) {
	dir := "/opt/jbb"
	env := fakeEnv{
		vars:  map[string]string{"SPECJBB2005": dir},
		files: map[string]bool{filepath.Join(dir, "jbb.jar"): true},
	}
	s := NewSpecJbb2005(env)
	var ee *EnvironmentError
	require.True(t, errors.As(s.ValidateEnvironment(), &ee), "check.jar is missing")

	env.files[filepath.Join(dir, "check.jar")] = true
	require.NoError(t, s.ValidateEnvironment())

	args, err := CommandLine(s, &Run{})
	require.NoError(t, err)
	cp := filepath.Join(dir, "jbb.jar") + string(os.PathListSeparator) + filepath.Join(dir, "check.jar")
	assert.Equal(t, []string{"-cp", cp, "spec.jbb.JBBmain", "-propfile", "SPECjbb.props"}, args)

	_, err = CommandLine(s, &Run{Benchmarks: []string{"default"}})
	var ce *ConfigurationError
	assert.True(t, errors.As(err, &ce))

	out := "Valid run, Score is  12345\n"
	assert.Equal(t, outcome.Success, outcome.Classify(out, 0, true, s.Patterns()).Kind)
	assert.Equal(t, outcome.Failure, outcome.Classify(out+"VALIDATION ERROR\n", 0, true, s.Patterns()).Kind)
	rules, err := s.Rules(&Run{}, out)
	require.NoError(t, err)
	recs, errs := extract.Apply(rules, extract.Input{Output: out})
	require.Empty(t, errs)
	require.Len(t, recs, 1)
	assert.Equal(t, "default", recs[0].Benchmark)
	assert.Equal(t, 12345.0, recs[0].Value)
	assert.Equal(t, "bops", recs[0].Unit)
}

func TestSpecJbb2015(t *testing.T) {
	dir := "/opt/jbb15"
	jar := filepath.Join(dir, "specjbb2015.jar")
	s := NewSpecJbb2015(fakeEnv{vars: map[string]string{"SPECJBB2015": dir}, files: map[string]bool{jar: true}})
	assert.Equal(t, "specjbb2015", s.Name())
	args, err := CommandLine(s, &Run{RunArgs: []string{"-ikv"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"-jar", jar, "-m", "composite", "-ikv"}, args)

	out := "org.spec.jbb.controller: Run finished\n" +
		"RUN RESULT: hbIR (max attempted) = 100, hbIR (settled) = 90, max-jOPS = 80, critical-jOPS = 40\n"
	assert.Equal(t, outcome.Success, outcome.Classify(out, 0, true, s.Patterns()).Kind)
	rules, err := s.Rules(&Run{}, out)
	require.NoError(t, err)
	recs, errs := extract.Apply(rules, extract.Input{Output: out})
	require.Empty(t, errs)
	require.Len(t, recs, 2)
	assert.Equal(t, "max", recs[0].Name)
	assert.Equal(t, 80.0, recs[0].Value)
	assert.Equal(t, "critical", recs[1].Name)
	assert.Equal(t, 40.0, recs[1].Value)
}

func TestRenaissance(t *testing.T) {
	s := NewRenaissance(fakeEnv{vars: map[string]string{"RENAISSANCE": "/r.jar"}})
	require.NoError(t, s.ValidateEnvironment())

	args, err := CommandLine(s, &Run{})
	require.NoError(t, err)
	assert.Equal(t, []string{"-jar", "/r.jar", "all"}, args)
	args, err = CommandLine(s, &Run{Benchmarks: []string{"Reduce", "PageRank"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"-jar", "/r.jar", "Reduce,PageRank"}, args)
	_, err = CommandLine(s, &Run{Benchmarks: []string{}})
	var ce *ConfigurationError
	assert.True(t, errors.As(err, &ce))

	out := "====== Reduce, iteration 0 completed (120 ms) ======\n" +
		"====== Reduce, iteration 1 completed (110 ms) ======\n" +
		"====== Reduce, final iteration completed (100 ms) ======\n"
	assert.Equal(t, outcome.Success, outcome.Classify(out, 0, true, s.Patterns()).Kind)
	rules, err := s.Rules(&Run{}, out)
	require.NoError(t, err)
	recs, errs := extract.Apply(rules, extract.Input{Output: out})
	require.Empty(t, errs)
	require.Len(t, recs, 3)
	assert.Equal(t, 1, recs[1].Iteration)
	assert.Equal(t, "time", recs[2].Name)
	assert.Equal(t, 100.0, recs[2].Value)
}

func TestRegistry(t *testing.T) {
	var r Registry
	require.NoError(t, r.Add(NewDaCapo(dacapoEnv)))
	require.NoError(t, r.Add(NewRenaissance(dacapoEnv)))
	assert.Error(t, r.Add(NewDaCapo(dacapoEnv)))
	assert.Equal(t, []string{"dacapo", "renaissance"}, r.Names())
	_, ok := r.Get("dacapo")
	assert.True(t, ok)
	_, ok = r.Get("specjvm2008")
	assert.False(t, ok)
}
