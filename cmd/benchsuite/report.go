// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"math"

	"github.com/spf13/cobra"

	"golang.org/x/benchsuite/benchfmt"
	"golang.org/x/benchsuite/benchmath"
	"golang.org/x/benchsuite/metric"
	"golang.org/x/benchsuite/report"
)

// reportOptions holds the flags of summarize and compare.
type reportOptions struct {
	*rootOptions
	Assume     string
	Confidence float64
	Alpha      float64
}

func (o *reportOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Assume, "assume", "", "distributional assumption: nothing or exact (default per unit)")
	cmd.Flags().Float64Var(&o.Confidence, "confidence", 0.95, "confidence `level` of summary intervals")
	cmd.Flags().Float64Var(&o.Alpha, "alpha", 0.05, "significance `level` of comparisons")
}

func (o *reportOptions) options() (*report.Options, error) {
	opts := &report.Options{
		Confidence: o.Confidence,
		Thresholds: &benchmath.Thresholds{CompareAlpha: o.Alpha},
	}
	if o.Assume != "" {
		a, err := benchmath.ParseAssumption(o.Assume)
		if err != nil {
			return nil, usageErr(err)
		}
		opts.Assumption = a
	}
	return opts, nil
}

func readRecords(paths []string) ([]metric.Record, error) {
	var all []metric.Record
	for _, path := range paths {
		recs, err := metric.ReadFile(path)
		if err != nil {
			return nil, usageErr(err)
		}
		all = append(all, recs...)
	}
	return all, nil
}

func newSummarizeCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &reportOptions{rootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "summarize [flags] <records.json>...",
		Short: "Summarize metric record files",
		Long: `Summarize every series of the given record files, as written by
"run -o". With -format bench, the records are converted to the Go
benchmark format instead, for use with benchstat.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.Format == "bench" {
				return benchfmt.WriteRecords(out, records)
			}
			ropts, err := opts.options()
			if err != nil {
				return err
			}
			sums := report.Summarize(records, ropts)
			if opts.Format == "json" {
				return writeSummariesJSON(out, sums)
			}
			return report.WriteSummaries(out, sums)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func newCompareCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &reportOptions{rootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "compare [flags] <old.json> <new.json>",
		Short: "Compare two metric record files",
		Long: `Compare every series of two record files and report significant
changes, marking them better or worse by the metric's direction.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			old, err := readRecords(args[:1])
			if err != nil {
				return err
			}
			new, err := readRecords(args[1:])
			if err != nil {
				return err
			}
			ropts, err := opts.options()
			if err != nil {
				return err
			}
			deltas := report.Compare(old, new, ropts)
			out := cmd.OutOrStdout()
			if opts.Format == "json" {
				return writeDeltasJSON(out, deltas)
			}
			return report.WriteDeltas(out, deltas)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

type summaryJSON struct {
	Series string   `json:"series"`
	Unit   string   `json:"unit,omitempty"`
	Center float64  `json:"center"`
	Lo     *float64 `json:"lo,omitempty"`
	Hi     *float64 `json:"hi,omitempty"`
	N      int      `json:"n"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func toSummaryJSON(s *report.Summary) *summaryJSON {
	if s == nil {
		return nil
	}
	return &summaryJSON{
		Series: s.Series.Label(),
		Unit:   s.Series.Key.Unit,
		Center: s.Summary.Center,
		Lo:     finite(s.Summary.Lo),
		Hi:     finite(s.Summary.Hi),
		N:      len(s.Sample.Values),
	}
}

func writeSummariesJSON(w io.Writer, sums []*report.Summary) error {
	out := make([]*summaryJSON, len(sums))
	for i, s := range sums {
		out[i] = toSummaryJSON(s)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeDeltasJSON(w io.Writer, deltas []*report.Delta) error {
	type deltaJSON struct {
		Old       *summaryJSON `json:"old,omitempty"`
		New       *summaryJSON `json:"new,omitempty"`
		P         float64      `json:"p"`
		Change    string       `json:"change,omitempty"`
		Direction string       `json:"direction,omitempty"`
	}
	out := make([]deltaJSON, len(deltas))
	for i, d := range deltas {
		out[i] = deltaJSON{
			Old:       toSummaryJSON(d.Old),
			New:       toSummaryJSON(d.New),
			P:         d.Comparison.P,
			Change:    d.Change(),
			Direction: d.Direction(),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
