// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package models

import "time"

// Movie is the display shape of a catalog row.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Summary     string   `json:"summary,omitempty"`
	Cast        string   `json:"cast,omitempty"`
	Directors   string   `json:"directors,omitempty"`
	Producers   string   `json:"producers,omitempty"`
	Genres      []string `json:"genres"`
	GenreLabels []string `json:"genre_labels,omitempty"`
	Countries   []string `json:"countries"`
	Popularity  string   `json:"popularity,omitempty"`
	Duration    float64  `json:"duration_minutes"`
	Rating      *float64 `json:"rating"`
	Votes       int      `json:"votes"`
	PosterURL   string   `json:"poster_url,omitempty"`
}

// SearchRequest holds /movies query parameters. An empty query lists the
// catalog in reference-picker order.
type SearchRequest struct {
	Query string `query:"q" validate:"omitempty,max=200"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// SearchHit is one title search result.
type SearchHit struct {
	Movie
	Score float64 `json:"score"`
}

// SearchResult is the data of /movies.
type SearchResult struct {
	Query string      `json:"query"`
	Hits  []SearchHit `json:"hits"`
}

// CatalogStatus is the data of /catalog/status.
type CatalogStatus struct {
	Ready         bool               `json:"ready"`
	Source        string             `json:"source"`
	Format        string             `json:"format"`
	Hash          string             `json:"hash,omitempty"`
	Movies        int                `json:"movies"`
	Dropped       int                `json:"dropped_rows"`
	Columns       int                `json:"feature_columns"`
	Blocks        []FeatureBlock     `json:"blocks,omitempty"`
	Vocabulary    map[string]int     `json:"vocabulary,omitempty"`
	Weights       map[string]float64 `json:"weights,omitempty"`
	BuiltAt       *time.Time         `json:"built_at,omitempty"`
	BuildMS       int64              `json:"build_ms"`
	Versions      int                `json:"artifact_versions"`
	Requests      int64              `json:"requests"`
	CacheHits     int64              `json:"cache_hits"`
	CacheMisses   int64              `json:"cache_misses"`
	LastReloadErr string             `json:"last_reload_error,omitempty"`
}

// FeatureBlock is one column range of the feature matrix.
type FeatureBlock struct {
	Name   string  `json:"name"`
	Start  int     `json:"start"`
	Width  int     `json:"width"`
	Weight float64 `json:"weight"`
}
