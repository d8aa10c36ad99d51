// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"golang.org/x/benchsuite/catalog"
	"golang.org/x/benchsuite/driver"
	"golang.org/x/benchsuite/metric"
	"golang.org/x/benchsuite/profile"
	"golang.org/x/benchsuite/suite"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	*rootOptions
	Profile string
	Output  string
	Timeout time.Duration
	Echo    bool
}

func newRunCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [flags] <suite[:benchmarks]> [vm-flags...] [-- harness-args...]",
		Short: "Run the benchmarks of a suite",
		Long: `Run the selected benchmarks of a suite and report their metrics.

Every argument after the selector is a VM flag, except that
--keep-scratch keeps the suite's scratch directory. Arguments after
"--" are passed to the harness, such as "-n 5" to override the
iteration count.

Example:
  benchsuite run dacapo:avrora,fop
  benchsuite run --profile server/graal-core -o graal.json dacapo -Xmx2g
  benchsuite run specjvm2008:compress -- -it 240s`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, opts, args)
		},
	}
	// Flags after the selector belong to the VM.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "execution profile `name[/config]`")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "also write records as JSON to `file`")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "bound each benchmark process (overrides the configuration)")
	cmd.Flags().BoolVar(&opts.Echo, "echo", false, "copy benchmark output to stderr")

	return cmd
}

// lookupSuite resolves a selector against the suite catalog.
func lookupSuite(opts *rootOptions, selector string) (suite.Suite, []string, error) {
	name, benchmarks := suite.ParseSelector(selector)
	reg := catalog.Default(opts.cfg.Environment())
	s, ok := reg.Get(name)
	if !ok {
		return nil, nil, usageErr(fmt.Errorf("unknown suite %q (see benchsuite list)", name))
	}
	return s, benchmarks, nil
}

func runSuite(cmd *cobra.Command, opts *runOptions, args []string) error {
	cfg := opts.cfg
	s, benchmarks, err := lookupSuite(opts.rootOptions, args[0])
	if err != nil {
		return err
	}
	var prof *profile.Profile
	if opts.Profile != "" {
		profiles, err := cfg.Registry()
		if err != nil {
			return usageErr(err)
		}
		if prof, err = profiles.Parse(opts.Profile); err != nil {
			return usageErr(err)
		}
	}
	run := suite.ParseArgs(args[1:])
	run.Benchmarks = benchmarks

	ex := &driver.ExecExecutor{Timeout: cfg.Timeout}
	if cmd.Flags().Changed("timeout") {
		ex.Timeout = opts.Timeout
	}
	if opts.Echo {
		ex.Echo = cmd.ErrOrStderr()
	}
	d := &driver.Driver{
		Executor:   ex,
		Logger:     slog.Default(),
		Java:       cfg.Java,
		ScratchDir: cfg.ScratchDir,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	results, err := d.Run(ctx, s, prof, run)
	var envErr *suite.EnvironmentError
	if errors.As(err, &envErr) {
		return usageErr(err)
	}

	var records []metric.Record
	failed := 0
	for _, res := range results {
		records = append(records, res.Records...)
		if res.Outcome.Failed() {
			failed++
		}
	}
	if opts.Output != "" {
		if werr := writeRecordFile(opts.Output, records); werr != nil {
			return werr
		}
	}
	out := cmd.OutOrStdout()
	if opts.Format == "text" {
		if werr := writeOutcomes(out, results); werr != nil {
			return werr
		}
		if len(records) > 0 {
			fmt.Fprintln(out)
		}
	}
	if werr := writeRecords(out, opts.Format, records); werr != nil {
		return werr
	}

	if err != nil {
		return err
	}
	if failed > 0 {
		return &exitError{exitFailure, fmt.Errorf("%d of %d benchmarks failed", failed, len(results))}
	}
	return nil
}

func writeRecordFile(path string, records []metric.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := metric.WriteJSON(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
