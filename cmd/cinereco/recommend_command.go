// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package main

import (
	"github.com/spf13/cobra"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "recommend [title]",
		Short: "Rank movies similar to a reference movie",
		Example: `  cinereco recommend "Nova" --year 2015
  cinereco recommend --id m01 --top 10 --year-min 1990 --min-rating 6.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ensureEngine(cmd.Context())
			if err != nil {
				return err
			}
			q := flags.query(cmd, args, engine.Config().Limits)

			resp, err := engine.Recommend(cmd.Context(), q)
			if err != nil {
				return renderQueryError(cmd, err)
			}
			if ctx.flags.json {
				return writeJSON(cmd, resp)
			}
			renderRecommendations(cmd, resp)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newTieredCommand(ctx *commandContext) *cobra.Command {
	var flags queryFlags
	var perTier int

	cmd := &cobra.Command{
		Use:   "tiered [title]",
		Short: "Group similar movies by popularity tier",
		Example: `  cinereco tiered --id m01
  cinereco tiered "Nova" --year 2015 --per-tier 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ensureEngine(cmd.Context())
			if err != nil {
				return err
			}
			q := flags.query(cmd, args, engine.Config().Limits)

			resp, err := engine.Tiered(cmd.Context(), q, perTier)
			if err != nil {
				return renderQueryError(cmd, err)
			}
			if ctx.flags.json {
				return writeJSON(cmd, resp)
			}
			renderTiered(cmd, resp)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&perTier, "per-tier", 0, "Movies kept per tier (default from config)")
	return cmd
}
