// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import "strings"

// DefaultPosterBaseURL is prepended to TMDB-relative poster paths.
const DefaultPosterBaseURL = "https://image.tmdb.org/t/p/w500"

// Movie is one row of the catalog, defaulted at ingestion.
type Movie struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary,omitempty"`
	Cast       string   `json:"cast,omitempty"`
	Directors  string   `json:"directors,omitempty"`
	Producers  string   `json:"producers,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Countries  []string `json:"countries,omitempty"`
	Popularity string   `json:"popularity,omitempty"`
	Duration   float64  `json:"duration"`
	Year       int      `json:"year"`
	Rating     float64  `json:"rating"`
	HasRating  bool     `json:"has_rating"`
	Votes      int      `json:"votes"`
	Poster1    string   `json:"poster1,omitempty"`
	Poster2    string   `json:"poster2,omitempty"`
}

// PosterURL returns the first resolvable poster, trying Poster1 then Poster2.
func (m *Movie) PosterURL(base string) string {
	for _, raw := range []string{m.Poster1, m.Poster2} {
		if u := ResolvePosterURL(raw, base); u != "" {
			return u
		}
	}
	return ""
}

// ResolvePosterURL turns a raw poster value into an absolute URL.
// Absolute http(s) URLs pass through, protocol-relative URLs get https,
// and TMDB-relative paths get base prepended. Anything else yields "".
func ResolvePosterURL(raw, base string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "none") {
		return ""
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return s
	case strings.HasPrefix(s, "//"):
		return "https:" + s
	case strings.HasPrefix(s, "/"):
		if base == "" {
			base = DefaultPosterBaseURL
		}
		return strings.TrimRight(base, "/") + s
	default:
		return ""
	}
}
