// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/cinereco/internal/textutil"
)

// rowDecoder maps raw string cells onto Movie fields by header position.
// It is built once per table so per-row decoding does no name lookups.
type rowDecoder struct {
	thresholds PopularityThresholds

	id, title, summary, cast, directors, producers int
	genre, countries, popularity                   int
	duration, year, rating, votes                  int
	poster1, poster2                               int
}

// newRowDecoder resolves column positions from a header. Header names are
// trimmed before matching. Missing optional columns resolve to -1.
func newRowDecoder(header []string, source string, thresholds PopularityThresholds) (*rowDecoder, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	lookup := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	d := &rowDecoder{
		thresholds: thresholds,
		id:         lookup(ColID),
		title:      lookup(ColTitle),
		summary:    lookup(ColSummary),
		cast:       lookup(ColCast),
		directors:  lookup(ColDirectors),
		producers:  lookup(ColProducers),
		genre:      lookup(ColGenre),
		countries:  lookup(ColCountries),
		popularity: lookup(ColPopularity),
		duration:   lookup(ColDuration),
		year:       lookup(ColYear),
		rating:     -1,
		votes:      lookup(ColVotes),
		poster1:    lookup(ColPosterMain),
		poster2:    lookup(ColPosterAlt),
	}
	if d.id < 0 {
		return nil, &MissingRequiredColumnError{Column: ColID, Source: source}
	}
	for _, c := range ratingColumns {
		if i := lookup(c); i >= 0 {
			d.rating = i
			break
		}
	}
	return d, nil
}

// decode converts one record. Cells beyond the record length read as empty.
func (d *rowDecoder) decode(rec []string) Movie {
	cell := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return cleanCell(rec[i])
	}

	m := Movie{
		ID:        cell(d.id),
		Title:     cell(d.title),
		Summary:   cell(d.summary),
		Cast:      cell(d.cast),
		Directors: cell(d.directors),
		Producers: cell(d.producers),
		Genres:    textutil.ParseList(cell(d.genre)),
		Countries: textutil.ParseList(cell(d.countries)),
		Duration:  parseFloat(cell(d.duration)),
		Year:      int(parseFloat(cell(d.year))),
		Votes:     int(parseFloat(cell(d.votes))),
		Poster1:   cell(d.poster1),
		Poster2:   cell(d.poster2),
	}
	if r, ok := parseOptionalFloat(cell(d.rating)); ok {
		m.Rating = r
		m.HasRating = true
	}
	m.Popularity = cell(d.popularity)
	if m.Popularity == "" {
		m.Popularity = PopularityFromVotes(m.Votes, d.thresholds)
	}
	return m
}

// cleanCell trims a cell and maps missing markers such as "nan" to "".
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", "none", "null", "<na>":
		return ""
	}
	return s
}

func parseFloat(s string) float64 {
	v, _ := parseOptionalFloat(s)
	return v
}

func parseOptionalFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
