// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"net/http"

	"github.com/tomtom215/cinereco/internal/models"
)

// Recommendations handles GET /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	req, verr := parseRecommendRequest(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	resp, err := h.engine.Recommend(r.Context(), toQuery(req, h.engine.Config().Limits))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	cat := resp.Artifacts.Catalog()
	items := toRecommendations(cat, resp.Items, h.config.PosterBaseURL)
	respondSuccess(w, r, models.RecommendResult{
		Reference: toRecommendation(cat, resp.Reference, h.config.PosterBaseURL).Movie,
		Items:     items,
		Count:     len(items),
	}, models.Metadata{
		QueryTimeMS: resp.Took.Milliseconds(),
		Cached:      resp.Cached,
		CatalogHash: resp.CatalogHash,
	})
}

// TieredRecommendations handles GET /api/v1/recommendations/tiered.
func (h *Handler) TieredRecommendations(w http.ResponseWriter, r *http.Request) {
	req, verr := parseRecommendRequest(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	resp, err := h.engine.Tiered(r.Context(), toQuery(req, h.engine.Config().Limits), req.PerTier)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	cat := resp.Artifacts.Catalog()
	out := models.TieredResult{
		Reference: toRecommendation(cat, resp.Reference, h.config.PosterBaseURL).Movie,
		Tiers:     make([]models.TierResult, len(resp.Tiers)),
	}
	for i, t := range resp.Tiers {
		out.Tiers[i] = models.TierResult{Name: t.Name, Items: toRecommendations(cat, t.Items, h.config.PosterBaseURL)}
	}
	respondSuccess(w, r, out, models.Metadata{
		QueryTimeMS: resp.Took.Milliseconds(),
		Cached:      resp.Cached,
		CatalogHash: resp.CatalogHash,
	})
}
