// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/outcome"
	"golang.org/x/benchsuite/suite"
)

// extractOptions holds the flags of the extract command.
type extractOptions struct {
	*rootOptions
	Dir      string
	ExitCode int
}

func newExtractCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &extractOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "extract [flags] <suite:benchmark> <log-file> [vm-flags...] [-- harness-args...]",
		Short: "Extract metrics from a saved benchmark log",
		Long: `Classify the saved output of a benchmark process and extract its
metrics, as run would have. The VM flags and harness arguments must be
those of the original run where the suite's rules depend on them.

Example:
  benchsuite extract dacapo:avrora avrora.log
  benchsuite extract --dir work dacapo-timing:fop fop.log`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return extractLog(cmd, opts, args)
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "working `directory` of the run, for sidecar files")
	cmd.Flags().IntVar(&opts.ExitCode, "exit-code", 0, "exit code of the run")

	return cmd
}

func extractLog(cmd *cobra.Command, opts *extractOptions, args []string) error {
	s, benchmarks, err := lookupSuite(opts.rootOptions, args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return usageErr(err)
	}
	run := suite.ParseArgs(args[2:])
	run.Benchmarks = benchmarks
	run.ScratchDir = opts.Dir

	output := string(data)
	o := outcome.Classify(output, opts.ExitCode, s.ValidateReturnCode(opts.ExitCode), s.Patterns())
	rules, err := s.Rules(run, output)
	if err != nil {
		return err
	}
	records, errs := extract.Apply(rules, extract.Input{Output: output, Dir: opts.Dir})
	for _, err := range errs {
		slog.Warn("extraction error", "error", err)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "text" {
		fmt.Fprintf(out, "%s: %s\n", args[0], o)
		if len(records) > 0 {
			fmt.Fprintln(out)
		}
	}
	if err := writeRecords(out, opts.Format, records); err != nil {
		return err
	}
	if o.Failed() {
		return &exitError{exitFailure, fmt.Errorf("%s: %s", args[0], o)}
	}
	return nil
}
