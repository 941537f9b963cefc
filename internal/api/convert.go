// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/models"
	"github.com/tomtom215/cinereco/internal/recommend"
)

func ratingPtr(rating float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &rating
}

// toMovie converts a catalog row to its API form.
func toMovie(m *catalog.Movie, posterBase string) models.Movie {
	return models.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Summary:     m.Summary,
		Cast:        m.Cast,
		Directors:   m.Directors,
		Producers:   m.Producers,
		Genres:      nonNil(m.Genres),
		GenreLabels: catalog.TranslateGenres(m.Genres),
		Countries:   nonNil(m.Countries),
		Popularity:  m.Popularity,
		Duration:    m.Duration,
		Rating:      ratingPtr(m.Rating, m.HasRating),
		Votes:       m.Votes,
		PosterURL:   m.PosterURL(posterBase),
	}
}

// toRecommendation joins a ranked row with its catalog record. Rows are
// looked up by ID since the served catalog may have been swapped since
// ranking.
//
//nolint:gocritic // Recommendation is read-only here
func toRecommendation(cat *catalog.Catalog, rec recommend.Recommendation, posterBase string) models.Recommendation {
	var movie models.Movie
	if m, ok := cat.ByID(rec.ID); ok {
		movie = toMovie(m, posterBase)
	} else {
		movie = models.Movie{
			ID:          rec.ID,
			Title:       rec.Title,
			Year:        rec.Year,
			Directors:   rec.Directors,
			Genres:      nonNil(rec.Genres),
			GenreLabels: catalog.TranslateGenres(rec.Genres),
			Countries:   nonNil(rec.Countries),
			Popularity:  rec.Popularity,
			Duration:    rec.Duration,
			Rating:      ratingPtr(rec.Rating, rec.HasRating),
			Votes:       rec.Votes,
		}
	}
	badge := recommend.BadgeFor(rec.DistanceCosine)
	return models.Recommendation{
		Movie:            movie,
		DistanceCosine:   rec.DistanceCosine,
		SimilarityCosine: rec.SimilarityCosine,
		Badge:            models.SimilarityBadge{Key: badge.Key, Label: badge.Label},
	}
}

func toRecommendations(cat *catalog.Catalog, recs []recommend.Recommendation, posterBase string) []models.Recommendation {
	out := make([]models.Recommendation, len(recs))
	for i := range recs {
		out[i] = toRecommendation(cat, recs[i], posterBase)
	}
	return out
}

func toOptions(cands []recommend.Candidate) []models.MovieOption {
	out := make([]models.MovieOption, len(cands))
	for i, c := range cands {
		out[i] = models.MovieOption{
			ID:        c.ID,
			Title:     c.Title,
			Year:      c.Year,
			Directors: c.Directors,
			Rating:    ratingPtr(c.Rating, c.HasRating),
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
