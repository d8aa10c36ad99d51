// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"golang.org/x/benchsuite/catalog"
	"golang.org/x/benchsuite/instrument"
	"golang.org/x/benchsuite/internal/texttab"
	"golang.org/x/benchsuite/suite"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [suite [-- harness-args...]]",
		Short: "List suites, or the benchmarks of a suite",
		Long: `List the registered suites, or the benchmarks a suite runs by
default. Harness arguments such as "-n 0" affect which benchmarks are
skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reg := catalog.Default(opts.cfg.Environment())
			if len(args) == 0 {
				if opts.Format == "json" {
					return json.NewEncoder(out).Encode(reg.Names())
				}
				var tab texttab.Table
				for _, name := range reg.Names() {
					s, _ := reg.Get(name)
					row := []string{name, s.Group(), s.Subgroup()}
					if base := instrument.Unwrap(s); base != s {
						row = append(row, "wraps "+base.Name())
					}
					tab.Row(row...)
				}
				return tab.Format(out)
			}

			s, _, err := lookupSuite(opts, args[0])
			if err != nil {
				return err
			}
			benchmarks, err := s.BenchmarkList(suite.ParseArgs(args[1:]))
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				return json.NewEncoder(out).Encode(benchmarks)
			}
			for _, b := range benchmarks {
				fmt.Fprintln(out, b)
			}
			return nil
		},
	}
}

func newProfilesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List execution profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.cfg.Registry()
			if err != nil {
				return usageErr(err)
			}
			out := cmd.OutOrStdout()
			if opts.Format == "json" {
				return json.NewEncoder(out).Encode(reg.All())
			}
			var tab texttab.Table
			for _, p := range reg.All() {
				tab.Row(p.ID(), strings.Join(p.Flags, " "))
			}
			return tab.Format(out)
		},
	}
}
