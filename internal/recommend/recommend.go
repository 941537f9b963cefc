// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"fmt"
	"sort"
)

// Query is a recommendation request against one artifact bundle.
type Query struct {
	// Selector names the reference movie. Ignored when Position is set.
	Selector Selector `json:"selector"`

	// Position is an already-resolved catalog row.
	Position *int `json:"position,omitempty"`

	// YearMin and YearMax bound candidate release years, inclusive.
	YearMin int `json:"year_min"`
	YearMax int `json:"year_max"`

	// MinRating drops candidates rated below it, or without a rating.
	MinRating *float64 `json:"min_rating,omitempty"`

	// TopN is the maximum number of results.
	TopN int `json:"top_n"`

	// CandidatePool is the number of neighbors fetched before filtering.
	CandidatePool int `json:"candidate_pool"`

	// ApplyGate enforces the animation, documentary and horror gate.
	ApplyGate bool `json:"apply_gate"`
}

// Validate checks the query bounds.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (q Query) Validate() error {
	if q.Position == nil && q.Selector.IsZero() {
		return &InvalidQueryError{Field: "selector", Reason: "needs an id or a title"}
	}
	if q.TopN < 1 {
		return &InvalidQueryError{Field: "top_n", Reason: fmt.Sprintf("must be positive, got %d", q.TopN)}
	}
	if q.CandidatePool < 1 {
		return &InvalidQueryError{Field: "candidate_pool", Reason: fmt.Sprintf("must be positive, got %d", q.CandidatePool)}
	}
	if q.YearMin > q.YearMax {
		return &InvalidQueryError{Field: "year_min", Reason: fmt.Sprintf("must be <= year_max, got %d > %d", q.YearMin, q.YearMax)}
	}
	if q.MinRating != nil && (*q.MinRating < 0 || *q.MinRating > 10) {
		return &InvalidQueryError{Field: "min_rating", Reason: fmt.Sprintf("must be in [0, 10], got %g", *q.MinRating)}
	}
	return nil
}

// Recommendation is one ranked result row. Gate flags are not part of it.
type Recommendation struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Year             int      `json:"year"`
	Directors        string   `json:"directors,omitempty"`
	Rating           float64  `json:"rating"`
	HasRating        bool     `json:"has_rating"`
	Votes            int      `json:"votes"`
	Duration         float64  `json:"duration"`
	Genres           []string `json:"genres,omitempty"`
	Countries        []string `json:"countries,omitempty"`
	Popularity       string   `json:"popularity,omitempty"`
	DistanceCosine   float64  `json:"distance_cosine"`
	SimilarityCosine float64  `json:"similarity_cosine"`
	Position         int      `json:"position"`
}

// Recommend ranks movies similar to the query's reference.
//
// The reference is resolved, its CandidatePool nearest neighbors are fetched,
// the reference itself is dropped, the gate and the year and rating filters
// are applied, and the survivors are sorted by ascending distance (stable on
// catalog order) and cut to TopN. An empty, non-nil slice means nothing
// survived the filters. The pool is never widened automatically.
//
//nolint:gocritic // Query is passed by value for immutable semantics
func Recommend(art *Artifacts, q Query) ([]Recommendation, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	ref, err := resolveQuery(art, q)
	if err != nil {
		return nil, err
	}
	return rank(art, ref, q)
}

// ResolveReference returns the reference row for a query.
//
//nolint:gocritic // Query is passed by value for immutable semantics
func ResolveReference(art *Artifacts, q Query) (int, error) {
	return resolveQuery(art, q)
}

//nolint:gocritic // Query is passed by value for immutable semantics
func resolveQuery(art *Artifacts, q Query) (int, error) {
	if q.Position != nil {
		if *q.Position < 0 || *q.Position >= art.Len() {
			return -1, &InvalidQueryError{Field: "position", Reason: fmt.Sprintf("out of range: %d", *q.Position)}
		}
		return *q.Position, nil
	}
	return Resolve(art, q.Selector)
}

//nolint:gocritic // Query is passed by value for immutable semantics
func rank(art *Artifacts, ref int, q Query) ([]Recommendation, error) {
	neighbors, err := art.index.Neighbors(ref, q.CandidatePool)
	if err != nil {
		return nil, fmt.Errorf("query neighbors: %w", err)
	}

	refFlags := art.rows[ref].flags
	out := make([]Recommendation, 0, min(q.TopN, len(neighbors)))
	for _, n := range neighbors {
		if n.Row == ref {
			continue
		}
		if q.ApplyGate && !refFlags.Matches(art.rows[n.Row].flags) {
			continue
		}
		m := art.catalog.At(n.Row)
		if m.Year < q.YearMin || m.Year > q.YearMax {
			continue
		}
		if q.MinRating != nil && (!m.HasRating || m.Rating < *q.MinRating) {
			continue
		}
		out = append(out, Recommendation{
			ID:               m.ID,
			Title:            m.Title,
			Year:             m.Year,
			Directors:        m.Directors,
			Rating:           m.Rating,
			HasRating:        m.HasRating,
			Votes:            m.Votes,
			Duration:         m.Duration,
			Genres:           m.Genres,
			Countries:        m.Countries,
			Popularity:       m.Popularity,
			DistanceCosine:   n.Distance,
			SimilarityCosine: 1 - n.Distance,
			Position:         n.Row,
		})
	}

	// Neighbors are already ordered; the stable sort keeps that contract
	// explicit and independent of the index implementation.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceCosine != out[j].DistanceCosine {
			return out[i].DistanceCosine < out[j].DistanceCosine
		}
		return out[i].Position < out[j].Position
	})
	if len(out) > q.TopN {
		out = out[:q.TopN]
	}
	return out, nil
}
