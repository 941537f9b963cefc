// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/recommend/features"
	"github.com/tomtom215/cinereco/internal/recommend/index"
	"github.com/tomtom215/cinereco/internal/textutil"
)

// BuildOptions configures BuildArtifacts.
type BuildOptions struct {
	Weights features.Weights
	TFIDF   features.TFIDFConfig
	Gate    GateConfig
}

// DefaultBuildOptions returns the reference weights, TF-IDF settings and gate.
func DefaultBuildOptions() BuildOptions {
	return DefaultConfig().BuildOptions()
}

// derivedRow holds the per-movie values computed once at build time.
type derivedRow struct {
	summary   string
	cast      string
	director  string
	producer  string
	genres    []string
	countries []string
	tiers     []string
	flags     GateFlags

	foldedDirectors string
}

// Artifacts is the immutable bundle built from one catalog version: derived
// rows, fitted extractors, the assembled matrix and the neighbor index.
// Row i of every component corresponds to catalog row i.
type Artifacts struct {
	catalog *catalog.Catalog
	rows    []derivedRow
	byTitle map[string][]int

	summary  *features.TFIDF
	cast     *features.TFIDF
	director *features.TFIDF

	genre      *features.Binarizer
	country    *features.Binarizer
	popularity *features.Binarizer
	scaler     *features.Scaler

	matrix *features.Matrix
	spans  []features.Span
	index  *index.Cosine

	builtAt  time.Time
	duration time.Duration
}

// BuildArtifacts vectorizes the catalog and builds the neighbor index.
// It is the one expensive step; callers should memoize the result by
// catalog content hash (see Engine).
//
//nolint:gocritic // BuildOptions is passed by value for immutable semantics
func BuildArtifacts(ctx context.Context, cat *catalog.Catalog, opts BuildOptions) (*Artifacts, error) {
	start := time.Now()
	if cat == nil || cat.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	if err := opts.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	art := &Artifacts{
		catalog: cat,
		rows:    make([]derivedRow, cat.Len()),
		byTitle: make(map[string][]int, cat.Len()),
	}
	gate := NewGate(opts.Gate)

	summaries := make([]string, cat.Len())
	casts := make([]string, cat.Len())
	directors := make([]string, cat.Len())
	genres := make([][]string, cat.Len())
	countries := make([][]string, cat.Len())
	tiers := make([][]string, cat.Len())
	numerics := numericRows(cat)

	for i := range cat.Movies() {
		m := cat.At(i)
		row := derivedRow{
			summary:   textutil.Normalize(m.Summary),
			cast:      textutil.Normalize(m.Cast),
			director:  textutil.Normalize(m.Directors),
			producer:  textutil.Normalize(m.Producers),
			genres:    foldTokens(m.Genres),
			countries: foldTokens(m.Countries),
		}
		if tier := textutil.Fold(m.Popularity); tier != "" {
			row.tiers = []string{tier}
		}
		row.flags = gate.Flags(row.genres)
		row.foldedDirectors = textutil.Fold(m.Directors)
		art.rows[i] = row

		if t := textutil.FoldTitle(m.Title); t != "" {
			art.byTitle[t] = append(art.byTitle[t], i)
		}

		summaries[i] = row.summary
		casts[i] = row.cast
		directors[i] = row.director
		genres[i] = row.genres
		countries[i] = row.countries
		tiers[i] = row.tiers
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var err error
	if art.summary, err = features.NewTFIDF(opts.TFIDF); err != nil {
		return nil, fmt.Errorf("summary vectorizer: %w", err)
	}
	if art.cast, err = features.NewTFIDF(opts.TFIDF); err != nil {
		return nil, fmt.Errorf("cast vectorizer: %w", err)
	}
	if art.director, err = features.NewTFIDF(opts.TFIDF); err != nil {
		return nil, fmt.Errorf("director vectorizer: %w", err)
	}
	xSummary := art.summary.FitTransform(summaries)
	xCast := art.cast.FitTransform(casts)
	xDirector := art.director.FitTransform(directors)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	art.genre = features.NewBinarizer()
	art.country = features.NewBinarizer()
	art.popularity = features.NewBinarizer()
	xGenre := art.genre.FitTransform(genres)
	xCountry := art.country.FitTransform(countries)
	xPopularity := art.popularity.FitTransform(tiers)

	art.scaler = features.NewScaler()
	xNumeric, err := art.scaler.FitTransform(numerics)
	if err != nil {
		return nil, fmt.Errorf("numeric scaler: %w", err)
	}

	w := opts.Weights
	art.matrix, art.spans, err = features.Assemble([]features.Block{
		{Name: features.BlockGenre, Weight: w.Genre, Matrix: xGenre},
		{Name: features.BlockCountry, Weight: w.Country, Matrix: xCountry},
		{Name: features.BlockSummary, Weight: w.Summary, Matrix: xSummary},
		{Name: features.BlockCast, Weight: w.Cast, Matrix: xCast},
		{Name: features.BlockDirector, Weight: w.Director, Matrix: xDirector},
		{Name: features.BlockPopularity, Weight: w.Popularity, Matrix: xPopularity},
		{Name: features.BlockNumeric, Weight: w.Numeric, Matrix: xNumeric},
	})
	if err != nil {
		return nil, fmt.Errorf("assemble feature matrix: %w", err)
	}
	if len(art.matrix.Rows) != cat.Len() {
		return nil, fmt.Errorf("feature matrix has %d rows for %d movies", len(art.matrix.Rows), cat.Len())
	}

	if art.index, err = index.NewCosine(art.matrix); err != nil {
		return nil, fmt.Errorf("build neighbor index: %w", err)
	}

	art.builtAt = time.Now()
	art.duration = time.Since(start)
	return art, nil
}

// numericRows returns duration, year and rating per movie. Unrated movies
// take the mean of the rated ones so they standardize to 0.
func numericRows(cat *catalog.Catalog) [][]float64 {
	var sum float64
	rated := 0
	for i := range cat.Len() {
		if m := cat.At(i); m.HasRating {
			sum += m.Rating
			rated++
		}
	}
	mean := 0.0
	if rated > 0 {
		mean = sum / float64(rated)
	}

	rows := make([][]float64, cat.Len())
	for i := range rows {
		m := cat.At(i)
		rating := mean
		if m.HasRating {
			rating = m.Rating
		}
		rows[i] = []float64{m.Duration, float64(m.Year), rating}
	}
	return rows
}

func foldTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		f := textutil.Fold(t)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Catalog returns the catalog the artifacts were built from.
func (a *Artifacts) Catalog() *catalog.Catalog { return a.catalog }

// Hash returns the catalog content hash.
func (a *Artifacts) Hash() string { return a.catalog.ContentHash() }

// Len returns the number of movies.
func (a *Artifacts) Len() int { return a.catalog.Len() }

// Flags returns the gate flags of row i.
func (a *Artifacts) Flags(i int) GateFlags { return a.rows[i].flags }

// Index returns the neighbor index.
func (a *Artifacts) Index() *index.Cosine { return a.index }

// Status describes a built artifact bundle.
type Status struct {
	Hash          string          `json:"hash"`
	Movies        int             `json:"movies"`
	Columns       int             `json:"columns"`
	Blocks        []features.Span `json:"blocks"`
	Vocabulary    map[string]int  `json:"vocabulary"`
	BuiltAt       time.Time       `json:"built_at"`
	BuildDuration time.Duration   `json:"build_duration"`
}

// Status reports sizes and timings of the bundle.
func (a *Artifacts) Status() Status {
	return Status{
		Hash:    a.Hash(),
		Movies:  a.Len(),
		Columns: a.matrix.Cols,
		Blocks:  append([]features.Span(nil), a.spans...),
		Vocabulary: map[string]int{
			features.BlockSummary:    len(a.summary.Vocabulary()),
			features.BlockCast:       len(a.cast.Vocabulary()),
			features.BlockDirector:   len(a.director.Vocabulary()),
			features.BlockGenre:      len(a.genre.Classes()),
			features.BlockCountry:    len(a.country.Classes()),
			features.BlockPopularity: len(a.popularity.Classes()),
		},
		BuiltAt:       a.builtAt,
		BuildDuration: a.duration,
	}
}
