// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/metric"
	"golang.org/x/benchsuite/suite"
)

type fakeEnv map[string]string

func (e fakeEnv) Getenv(key string) string   { return e[key] }
func (e fakeEnv) Library(name string) string { return "" }
func (e fakeEnv) Exists(path string) bool    { return true }

func dacapo() *suite.DaCapo {
	return suite.NewDaCapo(fakeEnv{"DACAPO_CP": "/opt/dacapo.jar"})
}

// tagged is an instrument that adds one flag and one rule, both named
// by its tag.
type tagged string

func (t tagged) Suffix() string { return "-" + string(t) }

func (t tagged) Flags(run *suite.Run) []string { return []string{"-D" + string(t)} }

func (t tagged) Rules(run *suite.Run, inner suite.Suite) ([]extract.Rule, error) {
	return []extract.Rule{ruleFunc(func(extract.Input) ([]metric.Record, error) {
		return []metric.Record{{Name: string(t), BenchSuite: inner.Name()}}, nil
	})}, nil
}

type ruleFunc func(extract.Input) ([]metric.Record, error)

func (f ruleFunc) Parse(in extract.Input) ([]metric.Record, error) { return f(in) }

func TestWrapOrder(t *testing.T) {
	for n := 0; n <= 4; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			var ins []Instrument
			var wantFlags, wantRules []string
			name := "dacapo"
			for i := 0; i < n; i++ {
				tag := fmt.Sprintf("i%d", i)
				ins = append(ins, tagged(tag))
				wantFlags = append([]string{"-D" + tag}, wantFlags...)
				wantRules = append(wantRules, tag)
				name += "-" + tag
			}
			s := Wrap(dacapo(), ins...)
			assert.Equal(t, name, s.Name())

			run := &suite.Run{Benchmarks: []string{"avrora"}, VMArgs: []string{"-Xmx1g"}}
			args, err := suite.CommandLine(s, run)
			require.NoError(t, err)
			want := append(wantFlags, "-Xmx1g", "-jar", "/opt/dacapo.jar", "avrora", "-n", "20")
			assert.Equal(t, want, args)

			rules, err := s.Rules(run, "")
			require.NoError(t, err)
			require.Len(t, rules, 3+n)
			recs, errs := extract.Apply(rules[3:], extract.Input{})
			require.Empty(t, errs)
			var got []string
			for _, r := range recs {
				got = append(got, r.Name)
			}
			assert.Equal(t, wantRules, got)
		})
	}
}

func TestWrapDelegates(t *testing.T) {
	d := dacapo()
	s := Wrap(d, Timing{})
	assert.True(t, s.SingleBenchmark())
	assert.Equal(t, d.ScratchPrefix(), s.ScratchPrefix())
	assert.Equal(t, "Graal", s.Group())
	assert.Equal(t, d.Patterns(), s.Patterns())
	assert.True(t, s.ValidateReturnCode(0))
	assert.Same(t, d, Unwrap(s))
	assert.Same(t, d, Unwrap(d))

	// Skips still apply.
	_, err := suite.CommandLine(s, &suite.Run{Benchmarks: []string{"eclipse"}})
	assert.ErrorIs(t, err, suite.ErrSkip)
}

func TestTiming(t *testing.T) {
	dir := t.TempDir()
	csv := `global;GraalCompiler_Accm;1200;ms
global;FrontEnd_Accm;400;ms
global;FrontEnd_Count;17;
global;LIRPhaseTime_AllocationStage_Accm;300;"ms"
global;"Odd\;Name_Accm";1;ms
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DebugValuesFile), []byte(csv), 0o666))

	s := Wrap(dacapo(), Timing{})
	assert.Equal(t, "dacapo-timing", s.Name())
	run := &suite.Run{Benchmarks: []string{"fop"}, ScratchDir: dir}
	args, err := suite.CommandLine(s, run)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-Dgraal.Time=",
		"-Dgraal.DebugValueHumanReadable=false",
		"-Dgraal.DebugValueSummary=Name",
		"-Dgraal.DebugValueFile=debug-values.csv",
		"-jar",
	}, args[:5])

	rules, err := s.Rules(run, "")
	require.NoError(t, err)
	recs, errs := extract.Apply(rules, extract.Input{Dir: dir})
	require.Empty(t, errs)
	require.Len(t, recs, 3)

	var names []string
	for _, r := range recs {
		names = append(names, r.ValueName)
		assert.Equal(t, "compile-time", r.Name)
		assert.Equal(t, "fop", r.Benchmark)
		assert.Equal(t, "dacapo", r.BenchSuite)
		assert.Equal(t, "ms", r.Unit)
		assert.Equal(t, metric.Lower, r.Better)
	}
	assert.Equal(t, []string{"GraalCompiler", "FrontEnd", "LIRPhaseTime_AllocationStage"}, names)
	assert.Equal(t, 1200.0, recs[0].Value)
}

func TestTimingMissingFile(t *testing.T) {
	s := Wrap(dacapo(), Timing{})
	run := &suite.Run{Benchmarks: []string{"fop"}}
	rules, err := s.Rules(run, "")
	require.NoError(t, err)
	_, errs := extract.Apply(rules, extract.Input{Dir: t.TempDir()})
	require.Len(t, errs, 1)
	var pe *extract.ParseError
	assert.ErrorAs(t, errs[0], &pe)
}

func TestMoveProfiling(t *testing.T) {
	dir := t.TempDir()
	csv := "counter;moves;StackToReg;12345\ncounter;moves;RegToReg;678\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, BenchmarkCountersFile), []byte(csv), 0o666))

	s := Wrap(dacapo(), DaCapoMoveProfiling)
	assert.Equal(t, "dacapo-move-profiling", s.Name())
	run := &suite.Run{Benchmarks: []string{"h2"}, VMArgs: []string{"-Xmx2g"}, ScratchDir: dir}
	args, err := suite.CommandLine(s, run)
	require.NoError(t, err)
	assert.Equal(t, "-XX:+BootstrapJVMCI", args[0])
	assert.Equal(t, "-Dgraal.BenchmarkDynamicCounters=err, starting ====, PASSED in ", args[1])

	rules, err := s.Rules(run, "")
	require.NoError(t, err)
	recs, errs := extract.Apply(rules, extract.Input{Dir: dir})
	require.Empty(t, errs)
	require.Len(t, recs, 2)
	assert.Equal(t, "StackToReg", recs[0].ValueName)
	assert.Equal(t, 12345.0, recs[0].Value)
	assert.Equal(t, "#", recs[0].Unit)
	assert.Equal(t, "dynamic-moves", recs[1].Name)
	assert.Equal(t,
		"-XX:+BootstrapJVMCI ... -XX:JVMCICounterSize=10 -Dgraal.LIRProfileMoves=true ... ... ...",
		recs[0].VMFlags)
	assert.False(t, strings.Contains(recs[0].VMFlags, "-Xmx2g"))
}

func TestShortenFlags(t *testing.T) {
	for _, tc := range []struct {
		flags []string
		want  string
	}{
		{nil, ""},
		{[]string{"-Xmx1g", "-esa"}, "-Xmx1g -esa"},
		{[]string{"-Dgraal.GenericDynamicCounters=true", "-Xmx1g"}, "..."},
		{[]string{"-a", "-Dgraal.BenchmarkCountersFile=x", "-b", "-Dgraal.TimedDynamicCounters=1", "-c"}, "-a ... -b ..."},
	} {
		assert.Equal(t, tc.want, ShortenFlags(tc.flags), "%q", tc.flags)
	}
}

func TestWrapComposesTimingAndMoves(t *testing.T) {
	s := Wrap(dacapo(), Timing{}, DaCapoMoveProfiling)
	assert.Equal(t, "dacapo-timing-move-profiling", s.Name())
	run := &suite.Run{Benchmarks: []string{"avrora"}}
	args, err := suite.CommandLine(s, run)
	require.NoError(t, err)
	assert.Equal(t, "-XX:+BootstrapJVMCI", args[0])
	assert.Contains(t, args, "-Dgraal.Time=")

	rules, err := s.Rules(run, "")
	require.NoError(t, err)
	require.Len(t, rules, 5)
	assert.Equal(t, DebugValuesFile, rules[3].(*extract.FixedFileRule).File)
	assert.Equal(t, BenchmarkCountersFile, rules[4].(*extract.FixedFileRule).File)
}
