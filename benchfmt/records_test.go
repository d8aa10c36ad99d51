// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"golang.org/x/benchsuite/metric"
)

func testRecords() []metric.Record {
	base := metric.Record{
		Benchmark:  "avrora",
		BenchSuite: "dacapo",
		VM:         "server",
		ConfigName: "default",
		Unit:       "ms",
		Better:     metric.Lower,
	}
	timed := base
	timed.Name, timed.Value = "time", 4321
	warm := base
	warm.Name, warm.Value, warm.Iteration = "warmup", 5012, 19
	moves := metric.Record{
		Benchmark:  "h2",
		BenchSuite: "dacapo-move-profiling",
		VM:         "server",
		ConfigName: "graal-core",
		VMFlags:    "-XX:+BootstrapJVMCI ...",
		ValueName:  "StackToReg",
		Name:       "dynamic-moves",
		Value:      12345,
		Unit:       "#",
		Better:     metric.Lower,
		Dims:       map[string]string{"host-vm-config": "graal-core", "host-vm": "server"},
	}
	return []metric.Record{timed, warm, moves}
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, testRecords()); err != nil {
		t.Fatal(err)
	}
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "records", buf.Bytes())
}

func TestFromRecord(t *testing.T) {
	rec := metric.Record{
		Benchmark: "scala kmeans",
		ValueName: "a/b",
		Name:      "throughput",
		Value:     12,
		Unit:      "op/min",
	}
	res := FromRecord(rec)
	if got, want := res.Name, "scala_kmeans/value=a_b/metric=throughput"; got != want {
		t.Errorf("name: want %q, got %q", want, got)
	}
	if len(res.Values) != 1 {
		t.Fatalf("want 1 value, got %d", len(res.Values))
	}
	if v := res.Values[0]; v.Value != 12 || v.Unit != "op/min" || v.OrigUnit != "" {
		t.Errorf("want 12 op/min, got %+v", v)
	}
	if _, ok := res.GetConfig(metric.KeyVMFlags); ok {
		t.Errorf("empty %s should not be set", metric.KeyVMFlags)
	}

	rec.Unit = ""
	if v := FromRecord(rec).Values[0]; v.Unit != "#" {
		t.Errorf("unitless value: want unit #, got %q", v.Unit)
	}
}
