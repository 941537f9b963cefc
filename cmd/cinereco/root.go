// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags rootFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "cinereco",
		Short:         "Content-based movie recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.catalog, "catalog", "", "Catalog file (overrides catalog.path)")
	pf.StringVar(&flags.format, "format", "", "Catalog format: csv or duckdb (overrides catalog.format)")
	pf.BoolVar(&flags.json, "json", false, "Print JSON instead of tables")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log catalog loading and artifact builds")

	rootCmd.AddCommand(newRecommendCommand(ctx))
	rootCmd.AddCommand(newTieredCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))

	return rootCmd
}
