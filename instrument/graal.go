// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instrument

import (
	"regexp"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/metric"
	"golang.org/x/benchsuite/suite"
)

// counterDialect is the format of the compiler's CSV dumps.
var counterDialect = extract.Dialect{Delimiter: ';', Quote: '"', Escape: '\\'}

// Timing measures compiler phase times. The compiler dumps its
// accumulated timers to DebugValuesFile in the working directory.
type Timing struct{}

// DebugValuesFile is the sidecar file Timing reads.
const DebugValuesFile = "debug-values.csv"

var timerName = regexp.MustCompile(`^(?P<name>GraalCompiler|BackEnd|FrontEnd|LIRPhaseTime_\w+)_Accm`)

func (Timing) Suffix() string { return "-timing" }

func (Timing) Flags(run *suite.Run) []string {
	return []string{
		"-Dgraal.Time=",
		"-Dgraal.DebugValueHumanReadable=false",
		"-Dgraal.DebugValueSummary=Name",
		"-Dgraal.DebugValueFile=" + DebugValuesFile,
	}
}

// filterTimer keeps the accumulated phase timers, renamed to the phase.
func filterTimer(r extract.Row) (extract.Row, bool) {
	m := timerName.FindStringSubmatch(r["name"])
	if m == nil {
		return nil, false
	}
	r["name"] = m[timerName.SubexpIndex("name")]
	return r, true
}

func (Timing) Rules(run *suite.Run, inner suite.Suite) ([]extract.Rule, error) {
	return []extract.Rule{&extract.FixedFileRule{
		File:    DebugValuesFile,
		Columns: []string{"scope", "name", "value", "unit"},
		Dialect: counterDialect,
		Filter:  filterTimer,
		Template: suite.BaseTemplate(inner.Name()).With(extract.Template{
			metric.KeyBenchmark: extract.Literal(run.Benchmark()),
			metric.KeyValueName: extract.Source("name", extract.String),
			metric.KeyName:      extract.Literal("compile-time"),
			metric.KeyValue:     extract.Source("value", extract.Int),
			metric.KeyUnit:      extract.Source("unit", extract.String),
			metric.KeyBetter:    extract.Literal("lower"),
			metric.KeyIteration: extract.Literal(0),
		}),
	}}, nil
}

// MoveProfiling counts dynamically executed move instructions. The VM
// dumps its counters to BenchmarkCountersFile in the working directory.
type MoveProfiling struct {
	// Counters is the dynamic counters mode flag, such as
	// -Dgraal.BenchmarkDynamicCounters=...
	Counters string

	// Bootstrap eagerly initializes the compiler, for harnesses
	// that reroute standard output once they start.
	Bootstrap bool
}

// BenchmarkCountersFile is the sidecar file MoveProfiling reads.
const BenchmarkCountersFile = "benchmark-counters.csv"

// DaCapoMoveProfiling counts the moves of the final DaCapo iteration
// only.
var DaCapoMoveProfiling = MoveProfiling{
	Counters:  "-Dgraal.BenchmarkDynamicCounters=err, starting ====, PASSED in ",
	Bootstrap: true,
}

func (MoveProfiling) Suffix() string { return "-move-profiling" }

func (p MoveProfiling) Flags(run *suite.Run) []string {
	var flags []string
	if p.Bootstrap {
		flags = append(flags, "-XX:+BootstrapJVMCI")
	}
	return append(flags,
		p.Counters,
		"-XX:JVMCICounterSize=10",
		"-Dgraal.LIRProfileMoves=true",
		"-Dgraal.DynamicCountersHumanReadable=false",
		"-Dgraal.DynamicCountersPrintGroupSeparator=false",
		"-Dgraal.BenchmarkCountersFile="+BenchmarkCountersFile,
	)
}

func (p MoveProfiling) Rules(run *suite.Run, inner suite.Suite) ([]extract.Rule, error) {
	innerFlags, err := inner.VMArgs(run)
	if err != nil {
		return nil, err
	}
	flags := append(p.Flags(run), innerFlags...)
	return []extract.Rule{&extract.FixedFileRule{
		File:    BenchmarkCountersFile,
		Columns: []string{"type", "group", "name", "value"},
		Dialect: counterDialect,
		Template: suite.BaseTemplate(inner.Name()).With(extract.Template{
			metric.KeyBenchmark: extract.Literal(run.Benchmark()),
			metric.KeyVMFlags:   extract.Literal(ShortenFlags(flags)),
			metric.KeyValueName: extract.Source("name", extract.String),
			metric.KeyName:      extract.Literal("dynamic-moves"),
			metric.KeyValue:     extract.Source("value", extract.Int),
			metric.KeyUnit:      extract.Literal("#"),
			metric.KeyBetter:    extract.Literal("lower"),
			metric.KeyIteration: extract.Literal(0),
		}),
	}}, nil
}
