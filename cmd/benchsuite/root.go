// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"golang.org/x/benchsuite/config"
)

// rootOptions holds the global flags.
type rootOptions struct {
	Config  string
	Verbose bool
	Format  string // "text" | "json" | "bench"

	cfg *config.Config
}

var validFormats = []string{"text", "json", "bench"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "benchsuite",
		Short: "Run JVM benchmark suites",
		Long: `Benchsuite runs JVM benchmark suites under execution profiles and
extracts their metrics as normalized records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return usageErr(fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats))
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if opts.Config == "" {
				opts.cfg = config.Default()
				return nil
			}
			cfg, err := config.Load(opts.Config)
			if err != nil {
				return usageErr(err)
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "read configuration from `file`")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|bench)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newExtractCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newProfilesCommand(opts))
	cmd.AddCommand(newSummarizeCommand(opts))
	cmd.AddCommand(newCompareCommand(opts))

	return cmd
}
