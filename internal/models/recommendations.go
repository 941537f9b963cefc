// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package models

// RecommendRequest holds /recommendations and /recommendations/tiered query
// parameters. Pointer fields distinguish absent from zero.
type RecommendRequest struct {
	ID        string   `query:"id" validate:"omitempty,movieid"`
	Title     string   `query:"title" validate:"required_without=ID,omitempty,notblank,max=300"`
	Year      *int     `query:"year" validate:"omitempty,gte=1870,lte=2100"`
	Director  string   `query:"director" validate:"omitempty,max=200"`
	YearMin   *int     `query:"year_min" validate:"omitempty,gte=1870,lte=2100"`
	YearMax   *int     `query:"year_max" validate:"omitempty,gte=1870,lte=2100"`
	MinRating *float64 `query:"min_rating" validate:"omitempty,gte=0,lte=10"`
	TopN      int      `query:"top_n" validate:"omitempty,min=1"`
	Pool      int      `query:"pool" validate:"omitempty,min=1"`
	Gate      *bool    `query:"gate"`
	PerTier   int      `query:"per_tier" validate:"omitempty,min=1,max=50"`
}

// SimilarityBadge is the coarse similarity label of a result.
type SimilarityBadge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Recommendation is one ranked result.
type Recommendation struct {
	Movie
	DistanceCosine   float64         `json:"distance_cosine"`
	SimilarityCosine float64         `json:"similarity_cosine"`
	Badge            SimilarityBadge `json:"badge"`
}

// RecommendResult is the data of /recommendations.
type RecommendResult struct {
	Reference Movie            `json:"reference"`
	Items     []Recommendation `json:"items"`
	Count     int              `json:"count"`
}

// TierResult is one popularity group.
type TierResult struct {
	Name  string           `json:"name"`
	Items []Recommendation `json:"items"`
}

// TieredResult is the data of /recommendations/tiered.
type TieredResult struct {
	Reference Movie        `json:"reference"`
	Tiers     []TierResult `json:"tiers"`
}

// MovieOption is a candidate listed by AMBIGUOUS and
// NO_MATCH_AFTER_FILTERS errors.
type MovieOption struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Directors string   `json:"directors,omitempty"`
	Rating    *float64 `json:"rating"`
}
