// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"io"
	"strings"

	"golang.org/x/benchsuite/benchunit"
	"golang.org/x/benchsuite/metric"
)

// fileKeys are the record fields written as file configuration, in
// order. Dimension tags follow in sorted order.
var fileKeys = []string{
	metric.KeyBenchSuite,
	metric.KeyVM,
	metric.KeyConfigName,
	metric.KeyVMFlags,
}

// nameQuoter makes a value safe for use in a benchmark name or unit.
var nameQuoter = strings.NewReplacer(" ", "_", "\t", "_", "\n", "_", "/", "_")

// FromRecord converts a metric record to a Result.
func FromRecord(rec metric.Record) *Result {
	res := &Result{Iters: 1}

	name := nameQuoter.Replace(rec.Benchmark)
	if rec.ValueName != "" {
		name += "/value=" + nameQuoter.Replace(rec.ValueName)
	}
	name += "/metric=" + nameQuoter.Replace(rec.Name)
	res.Name = name

	vals := map[string]string{
		metric.KeyBenchSuite: rec.BenchSuite,
		metric.KeyVM:         rec.VM,
		metric.KeyConfigName: rec.ConfigName,
		metric.KeyVMFlags:    rec.VMFlags,
	}
	for _, k := range fileKeys {
		res.SetConfig(k, vals[k])
	}
	for _, k := range rec.DimKeys() {
		res.SetConfig(k, rec.Dims[k])
	}

	unit := recordUnit(rec)
	tv, tu := benchunit.Tidy(rec.Value, unit)
	v := Value{Value: tv, Unit: tu}
	if tu != unit {
		v.OrigValue, v.OrigUnit = rec.Value, unit
	}
	res.Values = []Value{v}
	return res
}

// WriteRecords writes records to w in the Go benchmark format.
func WriteRecords(w io.Writer, records []metric.Record) error {
	bw := NewWriter(w)
	for _, rec := range records {
		if err := bw.WriteRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// recordUnit returns the unit of rec as written in a result line.
// Unitless values are counts.
func recordUnit(rec metric.Record) string {
	if rec.Unit == "" {
		return "#"
	}
	return nameQuoter.Replace(rec.Unit)
}
