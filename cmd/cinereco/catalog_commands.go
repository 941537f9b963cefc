// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinereco/internal/catalog"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search catalog titles",
		Long:  "Search catalog titles. Without a query, lists the catalog by vote count.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}
			cat, err := ctx.catalog(cmd.Context())
			if err != nil {
				return err
			}
			hits := cat.Search(strings.Join(args, " "), limit)

			movies := make([]catalog.Movie, 0, len(hits))
			for _, h := range hits {
				movies = append(movies, *cat.At(h.Position))
			}
			if ctx.flags.json {
				return writeJSON(cmd, movies)
			}
			if len(movies) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching movies")
				return nil
			}

			rows := make([][]string, 0, len(movies))
			for i := range movies {
				m := &movies[i]
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					m.ID,
					m.Title,
					formatYear(m.Year),
					m.Directors,
					formatRating(m.Rating, m.HasRating),
					strconv.Itoa(m.Votes),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "ID", "Title", "Year", "Directors", "Rating", "Votes"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of results (0 for all)")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.catalog(cmd.Context())
			if err != nil {
				return err
			}
			m, ok := cat.ByID(strings.TrimSpace(args[0]))
			if !ok {
				return fmt.Errorf("movie %q not found", args[0])
			}
			if ctx.flags.json {
				return writeJSON(cmd, m)
			}

			rows := [][]string{
				{"ID", m.ID},
				{"Title", m.Title},
				{"Year", formatYear(m.Year)},
				{"Directors", m.Directors},
				{"Cast", m.Cast},
				{"Genres", strings.Join(catalog.TranslateGenres(m.Genres), ", ")},
				{"Countries", strings.Join(m.Countries, ", ")},
				{"Duration", formatDuration(m.Duration)},
				{"Rating", formatRating(m.Rating, m.HasRating)},
				{"Votes", strconv.Itoa(m.Votes)},
				{"Popularity", m.Popularity},
				{"Poster", m.PosterURL(ctx.posterBase())},
				{"Summary", m.Summary},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}
