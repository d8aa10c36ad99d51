// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extract turns benchmark harness output into metric records.
//
// A Rule is a pure function from the output of one finished process,
// plus the sidecar files it left in its working directory, to zero or
// more metric.Records. There are two kinds of rules: a StreamRule
// matches a regular expression against the captured text, and a
// FixedFileRule parses a delimited sidecar file with positional
// columns. Both produce records by evaluating a Template, which maps
// each schema field to a literal, a coerced source field, or the
// per-scan iteration counter.
//
// Rules must only be applied after the process has exited, so the
// sidecar files are complete.
package extract

import (
	"golang.org/x/benchsuite/metric"
)

// Input is what a Rule extracts records from.
type Input struct {
	// Output is the combined standard output and standard error
	// of the finished process.
	Output string

	// Dir is the directory sidecar file names are relative to.
	// This is typically the process' working directory.
	Dir string
}

// A Rule extracts records from the output of a finished run.
//
// Parse may return records together with a non-nil error if some
// records could not be produced. Parse must not retain or modify any
// state visible to other rules.
type Rule interface {
	Parse(in Input) ([]metric.Record, error)
}

// Apply applies every rule to in. It returns all records that could be
// extracted, in rule order, and the errors of rules that failed
// (partially or fully). A failing rule does not stop later rules.
func Apply(rules []Rule, in Input) (records []metric.Record, errs []error) {
	for _, rule := range rules {
		recs, err := rule.Parse(in)
		records = append(records, recs...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return records, errs
}
