// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinereco/internal/models"
	"github.com/tomtom215/cinereco/internal/recommend"
)

// SearchMovies handles GET /api/v1/movies?q=&limit=.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	req, verr := parseSearchRequest(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	art := h.engine.Artifacts()
	if art == nil {
		respondEngineError(w, r, recommend.ErrNotReady)
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = h.config.SearchLimit
	}

	cat := art.Catalog()
	hits := cat.Search(req.Query, limit)
	out := models.SearchResult{Query: req.Query, Hits: make([]models.SearchHit, len(hits))}
	for i, hit := range hits {
		out.Hits[i] = models.SearchHit{
			Movie: toMovie(cat.At(hit.Position), h.config.PosterBaseURL),
			Score: hit.Score,
		}
	}
	respondSuccess(w, r, out, models.Metadata{CatalogHash: art.Hash()})
}

// GetMovie handles GET /api/v1/movies/{id}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	art := h.engine.Artifacts()
	if art == nil {
		respondEngineError(w, r, recommend.ErrNotReady)
		return
	}
	id := chi.URLParam(r, "id")
	m, ok := art.Catalog().ByID(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Movie not found",
			map[string]any{"id": id}, nil)
		return
	}
	respondSuccess(w, r, toMovie(m, h.config.PosterBaseURL), models.Metadata{CatalogHash: art.Hash()})
}
