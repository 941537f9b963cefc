// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/cinereco/internal/textutil"
)

// Selector identifies a reference movie. ID wins when set; otherwise Title is
// matched, optionally narrowed by Year and a Director substring.
type Selector struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Year     *int   `json:"year,omitempty"`
	Director string `json:"director,omitempty"`
}

// String renders the selector for error messages.
//
//nolint:gocritic // value receiver keeps fmt verbs working on values
func (s Selector) String() string {
	if s.ID != "" {
		return fmt.Sprintf("id=%q", s.ID)
	}
	parts := []string{fmt.Sprintf("title=%q", s.Title)}
	if s.Year != nil {
		parts = append(parts, fmt.Sprintf("year=%d", *s.Year))
	}
	if s.Director != "" {
		parts = append(parts, fmt.Sprintf("director=%q", s.Director))
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether the selector names nothing.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (s Selector) IsZero() bool {
	return strings.TrimSpace(s.ID) == "" && strings.TrimSpace(s.Title) == ""
}

// Resolve maps a selector to exactly one catalog row.
//
// An ID must match exactly. A title is compared folded (case and accents
// ignored). A single title match resolves as is; several matches are narrowed
// by year and director. Narrowing to nothing is a *NoMatchAfterFiltersError,
// more than one survivor is an *AmbiguousError. Resolve never picks among
// several matches.
func Resolve(art *Artifacts, sel Selector) (int, error) {
	if id := strings.TrimSpace(sel.ID); id != "" {
		pos, ok := art.catalog.Position(id)
		if !ok {
			return -1, &NotFoundError{Selector: sel}
		}
		return pos, nil
	}

	title := textutil.FoldTitle(sel.Title)
	if title == "" {
		return -1, &InvalidQueryError{Field: "selector", Reason: "needs an id or a title"}
	}

	matches := art.byTitle[title]
	switch len(matches) {
	case 0:
		return -1, &NotFoundError{Selector: sel}
	case 1:
		return matches[0], nil
	}

	director := textutil.Fold(sel.Director)
	narrowed := make([]int, 0, len(matches))
	for _, pos := range matches {
		if sel.Year != nil && art.catalog.At(pos).Year != *sel.Year {
			continue
		}
		if director != "" && !strings.Contains(art.rows[pos].foldedDirectors, director) {
			continue
		}
		narrowed = append(narrowed, pos)
	}

	switch len(narrowed) {
	case 0:
		return -1, &NoMatchAfterFiltersError{Selector: sel, Options: art.candidates(matches)}
	case 1:
		return narrowed[0], nil
	default:
		return -1, &AmbiguousError{Selector: sel, Candidates: art.candidates(narrowed)}
	}
}

func (a *Artifacts) candidates(positions []int) []Candidate {
	out := make([]Candidate, len(positions))
	for i, pos := range positions {
		m := a.catalog.At(pos)
		out[i] = Candidate{
			ID:        m.ID,
			Title:     m.Title,
			Year:      m.Year,
			Directors: m.Directors,
			Rating:    m.Rating,
			HasRating: m.HasRating,
			Position:  pos,
		}
	}
	return out
}
