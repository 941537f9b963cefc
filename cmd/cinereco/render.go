// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/recommend"
)

var recommendationHeaders = []string{"#", "Title", "Year", "Directors", "Rating", "Genres", "Popularity", "Similarity", ""}

var recommendationAligns = []columnAlignment{
	alignRight, alignLeft, alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignLeft,
}

func renderRecommendations(cmd *cobra.Command, resp *recommend.Response) {
	out := cmd.OutOrStdout()
	writeReference(out, &resp.Reference, resp.CatalogHash, resp.Cached)
	if len(resp.Items) == 0 {
		fmt.Fprintln(out, "No similar movies match the filters")
		return
	}
	fmt.Fprintln(out, renderTable(recommendationHeaders, recommendationRows(resp.Items), recommendationAligns))
}

func renderTiered(cmd *cobra.Command, resp *recommend.TieredResponse) {
	out := cmd.OutOrStdout()
	writeReference(out, &resp.Reference, resp.CatalogHash, resp.Cached)
	for _, tier := range resp.Tiers {
		fmt.Fprintf(out, "\n%s (%d)\n", tier.Name, len(tier.Items))
		if len(tier.Items) == 0 {
			fmt.Fprintln(out, "  none")
			continue
		}
		fmt.Fprintln(out, renderTable(recommendationHeaders, recommendationRows(tier.Items), recommendationAligns))
	}
}

func writeReference(out io.Writer, ref *recommend.Recommendation, hash string, cached bool) {
	fmt.Fprintf(out, "Reference: %s (%s)", ref.Title, formatYear(ref.Year))
	if ref.Directors != "" {
		fmt.Fprintf(out, " by %s", ref.Directors)
	}
	fmt.Fprintln(out)
	note := ""
	if cached {
		note = ", cached"
	}
	fmt.Fprintf(out, "Catalog: %s%s\n", shortHash(hash), note)
}

func recommendationRows(items []recommend.Recommendation) [][]string {
	rows := make([][]string, 0, len(items))
	for i := range items {
		r := &items[i]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Title,
			formatYear(r.Year),
			r.Directors,
			formatRating(r.Rating, r.HasRating),
			strings.Join(catalog.TranslateGenres(r.Genres), ", "),
			r.Popularity,
			fmt.Sprintf("%.1f%%", r.SimilarityCosine*100),
			recommend.BadgeFor(r.DistanceCosine).Label,
		})
	}
	return rows
}

// renderQueryError prints the choices behind a resolution error, then
// returns the error so the command exits non-zero.
func renderQueryError(cmd *cobra.Command, err error) error {
	var (
		ambiguous *recommend.AmbiguousError
		noMatch   *recommend.NoMatchAfterFiltersError
	)
	switch {
	case errors.As(err, &ambiguous):
		fmt.Fprintf(cmd.OutOrStdout(), "%d movies match %s. Narrow it with --year, --director or --id:\n", len(ambiguous.Candidates), ambiguous.Selector)
		fmt.Fprintln(cmd.OutOrStdout(), renderCandidates(ambiguous.Candidates))
		return fmt.Errorf("ambiguous reference %s", ambiguous.Selector)
	case errors.As(err, &noMatch):
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing matches %s. Movies with that title:\n", noMatch.Selector)
		fmt.Fprintln(cmd.OutOrStdout(), renderCandidates(noMatch.Options))
		return fmt.Errorf("no movie matches %s", noMatch.Selector)
	}
	return err
}

func renderCandidates(cands []recommend.Candidate) string {
	rows := make([][]string, 0, len(cands))
	for _, c := range cands {
		rows = append(rows, []string{c.ID, c.Title, formatYear(c.Year), c.Directors, formatRating(c.Rating, c.HasRating)})
	}
	return renderTable(
		[]string{"ID", "Title", "Year", "Directors", "Rating"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight},
	)
}

func formatYear(year int) string {
	if year == 0 {
		return "?"
	}
	return strconv.Itoa(year)
}

func formatRating(rating float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

func formatDuration(minutes float64) string {
	if minutes <= 0 {
		return "-"
	}
	m := int(minutes)
	return fmt.Sprintf("%dh%02d", m/60, m%60)
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
