// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report summarizes and compares metric records.
//
// Records are grouped into series by metric.Key, so every iteration of
// a metric of a benchmark under one VM configuration and execution
// profile forms one sample. Summaries and comparisons
// use the statistics of package benchmath.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/benchsuite/benchfmt"
	"golang.org/x/benchsuite/benchmath"
	"golang.org/x/benchsuite/benchunit"
	"golang.org/x/benchsuite/internal/texttab"
	"golang.org/x/benchsuite/metric"
)

// A Series is the values of one metric of one benchmark.
type Series struct {
	Key    metric.Key
	Better metric.Better
	Values []float64
}

// Label returns a display name for s.
func (s *Series) Label() string {
	name := s.Key.Benchmark
	if s.Key.ValueName != "" {
		name += "/" + s.Key.ValueName
	}
	if s.Key.BenchSuite != "" {
		name = s.Key.BenchSuite + ":" + name
	}
	name += " " + s.Key.Name
	if s.Key.Dims != "" {
		name += " [" + s.Key.Dims + "]"
	}
	return name
}

// Group groups records into series, in sorted key order.
func Group(records []metric.Record) []*Series {
	m := make(map[metric.Key]*Series)
	var out []*Series
	for i := range records {
		rec := &records[i]
		k := rec.Key()
		s, ok := m[k]
		if !ok {
			s = &Series{Key: k}
			m[k] = s
			out = append(out, s)
		}
		if s.Better == metric.Unknown {
			s.Better = rec.Better
		}
		s.Values = append(s.Values, rec.Value)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessKey(out[i].Key, out[j].Key)
	})
	return out
}

func lessKey(a, b metric.Key) bool {
	if a.BenchSuite != b.BenchSuite {
		return a.BenchSuite < b.BenchSuite
	}
	if a.Benchmark != b.Benchmark {
		return a.Benchmark < b.Benchmark
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.ValueName != b.ValueName {
		return a.ValueName < b.ValueName
	}
	if a.Unit != b.Unit {
		return a.Unit < b.Unit
	}
	if a.VM != b.VM {
		return a.VM < b.VM
	}
	if a.ConfigName != b.ConfigName {
		return a.ConfigName < b.ConfigName
	}
	if a.VMFlags != b.VMFlags {
		return a.VMFlags < b.VMFlags
	}
	return a.Dims < b.Dims
}

// Options configures summaries and comparisons.
type Options struct {
	// Assumption is the distributional assumption. If nil, it is
	// chosen per unit from the unit metadata of the records.
	Assumption benchmath.Assumption

	// Confidence is the confidence level of summary intervals.
	// The default is 0.95.
	Confidence float64

	// Thresholds are the comparison thresholds. The default is
	// benchmath.DefaultThresholds.
	Thresholds *benchmath.Thresholds
}

func (o *Options) assumption(units benchfmt.UnitMetadataMap, unit string) benchmath.Assumption {
	if o.Assumption != nil {
		return o.Assumption
	}
	return units.GetAssumption(unit)
}

func (o *Options) confidence() float64 {
	if o.Confidence == 0 {
		return 0.95
	}
	return o.Confidence
}

func (o *Options) thresholds() *benchmath.Thresholds {
	if o.Thresholds == nil {
		return &benchmath.DefaultThresholds
	}
	return o.Thresholds
}

// A Summary is the summary of one series.
type Summary struct {
	Series  *Series
	Sample  *benchmath.Sample
	Summary benchmath.Summary
}

// Warnings returns the warnings of the sample and its summary.
func (s *Summary) Warnings() []error {
	return append(append([]error(nil), s.Sample.Warnings...), s.Summary.Warnings...)
}

// Summarize summarizes every series of records.
func Summarize(records []metric.Record, opts *Options) []*Summary {
	if opts == nil {
		opts = &Options{}
	}
	units := benchfmt.Units(records)
	var out []*Summary
	for _, s := range Group(records) {
		out = append(out, summarize(s, units, opts))
	}
	return out
}

func summarize(s *Series, units benchfmt.UnitMetadataMap, opts *Options) *Summary {
	values := append([]float64(nil), s.Values...)
	sample := benchmath.NewSample(values, opts.thresholds())
	a := opts.assumption(units, s.Key.Unit)
	return &Summary{Series: s, Sample: sample, Summary: a.Summary(sample, opts.confidence())}
}

// A Delta compares a series between two sets of records. Old or New
// is nil if the series appears in only one of them.
type Delta struct {
	Key        metric.Key
	Old, New   *Summary
	Comparison benchmath.Comparison

	// Better is +1 if higher values are better, -1 if lower values
	// are better, 0 if unknown.
	Better int
}

// Change returns the formatted change of the centers, or "" if d has
// no baseline or no new value.
func (d *Delta) Change() string {
	if d.Old == nil || d.New == nil {
		return ""
	}
	return d.Comparison.FormatDelta(d.Old.Summary.Center, d.New.Summary.Center)
}

// Direction returns "better", "worse" or "".
func (d *Delta) Direction() string {
	if d.Old == nil || d.New == nil {
		return ""
	}
	return d.Comparison.Direction(d.Old.Summary.Center, d.New.Summary.Center, d.Better)
}

// Compare compares every series of old and new.
func Compare(old, new []metric.Record, opts *Options) []*Delta {
	if opts == nil {
		opts = &Options{}
	}
	units := benchfmt.Units(append(append([]metric.Record(nil), old...), new...))
	deltas := make(map[metric.Key]*Delta)
	var out []*Delta
	get := func(k metric.Key) *Delta {
		d, ok := deltas[k]
		if !ok {
			d = &Delta{Key: k}
			deltas[k] = d
			out = append(out, d)
		}
		return d
	}
	for _, s := range Group(old) {
		get(s.Key).Old = summarize(s, units, opts)
	}
	for _, s := range Group(new) {
		get(s.Key).New = summarize(s, units, opts)
	}
	for _, d := range out {
		var better metric.Better
		if d.Old != nil {
			better = d.Old.Series.Better
		}
		if better == metric.Unknown && d.New != nil {
			better = d.New.Series.Better
		}
		d.Better = better.Sign()
		if d.Better == 0 {
			d.Better = units.GetBetter(d.Key.Unit)
		}
		if d.Old != nil && d.New != nil {
			a := opts.assumption(units, d.Key.Unit)
			d.Comparison = a.Compare(d.Old.Sample, d.New.Sample)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return lessKey(out[i].Key, out[j].Key)
	})
	return out
}

func formatSummary(s *Summary) string {
	if s == nil {
		return ""
	}
	v := benchunit.FormatValue(s.Summary.Center, s.Series.Key.Unit)
	if len(s.Sample.Values) < 2 {
		return v
	}
	return v + " ± " + s.Summary.PctRangeString()
}

// WriteSummaries writes summaries as a text table, followed by their
// warnings.
func WriteSummaries(w io.Writer, summaries []*Summary) error {
	var tab texttab.Table
	tab.SetAlign(1, texttab.Right).SetAlign(2, texttab.Right)
	tab.Row("series", "center", "n").Rule()
	var notes []string
	for _, s := range summaries {
		tab.Row(s.Series.Label(), formatSummary(s), fmt.Sprint(len(s.Sample.Values)))
		for _, err := range s.Warnings() {
			notes = append(notes, fmt.Sprintf("%s: %v", s.Series.Label(), err))
		}
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	return writeNotes(w, notes)
}

// WriteDeltas writes deltas as a text table, followed by their
// warnings.
func WriteDeltas(w io.Writer, deltas []*Delta) error {
	var tab texttab.Table
	tab.SetAlign(1, texttab.Right).SetAlign(2, texttab.Right).SetAlign(3, texttab.Right)
	tab.Row("series", "old", "new", "delta", "", "").Rule()
	var notes []string
	for _, d := range deltas {
		label := (&Series{Key: d.Key}).Label()
		var stat string
		if d.Old != nil && d.New != nil {
			stat = "(" + d.Comparison.String() + ")"
			for _, err := range d.Comparison.Warnings {
				notes = append(notes, fmt.Sprintf("%s: %v", label, err))
			}
		}
		tab.Row(label, formatSummary(d.Old), formatSummary(d.New), d.Change(), stat, d.Direction())
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	return writeNotes(w, notes)
}

func writeNotes(w io.Writer, notes []string) error {
	if len(notes) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n", strings.Join(notes, "\n"))
	return err
}
