// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/benchsuite/benchfmt"
	"golang.org/x/benchsuite/benchunit"
	"golang.org/x/benchsuite/driver"
	"golang.org/x/benchsuite/internal/texttab"
	"golang.org/x/benchsuite/metric"
)

// Exit codes.
const (
	exitFailure = 1 // a benchmark failed
	exitUsage   = 2 // bad arguments, configuration or environment
)

// exitError is an error with a specific exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error {
	return &exitError{exitUsage, err}
}

func exitCode(err error) int {
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitFailure
}

// writeRecords writes records to w in format.
func writeRecords(w io.Writer, format string, records []metric.Record) error {
	switch format {
	case "json":
		return metric.WriteJSON(w, records)
	case "bench":
		return benchfmt.WriteRecords(w, records)
	}
	if len(records) == 0 {
		return nil
	}
	var tab texttab.Table
	tab.SetAlign(3, texttab.Right).SetAlign(4, texttab.Right)
	tab.Row("suite", "benchmark", "metric", "value", "iter").Rule()
	for _, r := range records {
		name := r.Name
		if r.ValueName != "" {
			name = r.ValueName + " " + name
		}
		tab.Row(r.BenchSuite, r.Benchmark, name, benchunit.FormatValue(r.Value, r.Unit), strconv.Itoa(r.Iteration))
	}
	return tab.Format(w)
}

// writeOutcomes writes one line per benchmark process.
func writeOutcomes(w io.Writer, results []driver.BenchmarkResult) error {
	var tab texttab.Table
	tab.SetAlign(1, texttab.Right)
	for i := range results {
		res := &results[i]
		tab.Row(res.Name(), fmt.Sprintf("%d records", len(res.Records)), res.Outcome.String())
	}
	return tab.Format(w)
}
