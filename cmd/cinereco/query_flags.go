// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinereco/internal/recommend"
)

// queryFlags are the reference selector and filters shared by recommend
// and tiered.
type queryFlags struct {
	id        string
	title     string
	year      int
	director  string
	yearMin   int
	yearMax   int
	minRating float64
	top       int
	pool      int
	gate      bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.id, "id", "", "Reference movie ID")
	fl.StringVar(&f.title, "title", "", "Reference title (also accepted as arguments)")
	fl.IntVar(&f.year, "year", 0, "Release year narrowing a shared title")
	fl.StringVar(&f.director, "director", "", "Director substring narrowing a shared title")
	fl.IntVar(&f.yearMin, "year-min", 0, "Earliest candidate release year")
	fl.IntVar(&f.yearMax, "year-max", 0, "Latest candidate release year")
	fl.Float64Var(&f.minRating, "min-rating", 0, "Minimum candidate rating, 0 for no filter")
	fl.IntVar(&f.top, "top", 0, "Number of results")
	fl.IntVar(&f.pool, "pool", 0, "Neighbors fetched before filtering")
	fl.BoolVar(&f.gate, "gate", true, "Apply the animation, documentary and horror gate")
}

// query builds the engine query. Unset flags keep the engine defaults; a
// single year bound keeps the configured default for the other one.
func (f *queryFlags) query(cmd *cobra.Command, args []string, limits recommend.LimitsConfig) recommend.Query {
	fl := cmd.Flags()

	q := recommend.Query{
		Selector: recommend.Selector{
			ID:       strings.TrimSpace(f.id),
			Title:    strings.TrimSpace(f.title),
			Director: strings.TrimSpace(f.director),
		},
		TopN:          f.top,
		CandidatePool: f.pool,
		ApplyGate:     limits.DefaultGate,
	}
	if q.Selector.Title == "" && len(args) > 0 {
		q.Selector.Title = strings.TrimSpace(strings.Join(args, " "))
	}
	if fl.Changed("year") {
		year := f.year
		q.Selector.Year = &year
	}
	if fl.Changed("gate") {
		q.ApplyGate = f.gate
	}
	if fl.Changed("min-rating") && f.minRating != 0 {
		r := f.minRating
		q.MinRating = &r
	}

	minSet, maxSet := fl.Changed("year-min"), fl.Changed("year-max")
	switch {
	case minSet && maxSet:
		q.YearMin, q.YearMax = f.yearMin, f.yearMax
	case minSet:
		q.YearMin, q.YearMax = f.yearMin, limits.DefaultYearMax
	case maxSet:
		q.YearMin, q.YearMax = limits.DefaultYearMin, f.yearMax
	}
	return q
}
