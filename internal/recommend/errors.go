// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matched with errors.Is against the typed errors below.
var (
	ErrNotFound            = errors.New("movie not found")
	ErrAmbiguous           = errors.New("ambiguous movie reference")
	ErrNoMatchAfterFilters = errors.New("no movie matches the disambiguation filters")
	ErrInvalidQuery        = errors.New("invalid recommendation query")
)

// Candidate is a movie offered to the caller when a reference is ambiguous.
type Candidate struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Directors string  `json:"directors,omitempty"`
	Rating    float64 `json:"rating"`
	HasRating bool    `json:"has_rating"`
	Position  int     `json:"-"`
}

// NotFoundError means no movie matches the selector at all.
type NotFoundError struct {
	Selector Selector
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound.Error(), e.Selector)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// AmbiguousError means several movies still match after narrowing.
// Candidates lists them in catalog order.
type AmbiguousError struct {
	Selector   Selector
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s: %s matches %d movies (%s)", ErrAmbiguous.Error(), e.Selector, len(e.Candidates), describe(e.Candidates))
}

// Unwrap returns ErrAmbiguous.
func (e *AmbiguousError) Unwrap() error { return ErrAmbiguous }

// NoMatchAfterFiltersError means the title matched but year or director
// narrowing removed every match. Options lists the title matches before
// narrowing, so the caller can suggest which filter to relax.
type NoMatchAfterFiltersError struct {
	Selector Selector
	Options  []Candidate
}

func (e *NoMatchAfterFiltersError) Error() string {
	return fmt.Sprintf("%s: %s; available: %s", ErrNoMatchAfterFilters.Error(), e.Selector, describe(e.Options))
}

// Unwrap returns ErrNoMatchAfterFilters.
func (e *NoMatchAfterFiltersError) Unwrap() error { return ErrNoMatchAfterFilters }

// InvalidQueryError reports a query field outside its allowed range.
type InvalidQueryError struct {
	Field  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidQuery.Error(), e.Field, e.Reason)
}

// Unwrap returns ErrInvalidQuery.
func (e *InvalidQueryError) Unwrap() error { return ErrInvalidQuery }

func describe(cands []Candidate) string {
	parts := make([]string, 0, len(cands))
	for _, c := range cands {
		s := fmt.Sprintf("%s %q (%d)", c.ID, c.Title, c.Year)
		if c.Directors != "" {
			s += " by " + c.Directors
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}
