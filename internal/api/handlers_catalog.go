// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"net/http"

	"github.com/tomtom215/cinereco/internal/models"
)

// CatalogStatus handles GET /api/v1/catalog/status. It answers 200 before
// the first build too, with ready=false.
func (h *Handler) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	stats := h.engine.Stats()
	out := models.CatalogStatus{
		Source:      h.config.CatalogPath,
		Format:      h.config.CatalogFormat,
		Weights:     h.engine.Config().Weights.ToMap(),
		Versions:    stats.Versions,
		Requests:    stats.Requests,
		CacheHits:   stats.CacheHits,
		CacheMisses: stats.CacheMisses,
	}
	if h.reloads != nil {
		out.LastReloadErr = h.reloads.Last().Err
	}

	meta := models.Metadata{}
	if art := h.engine.Artifacts(); art != nil {
		st := art.Status()
		cat := art.Catalog()
		builtAt := st.BuiltAt
		out.Ready = true
		out.Hash = st.Hash
		out.Movies = st.Movies
		out.Dropped = cat.Dropped()
		out.Columns = st.Columns
		out.Vocabulary = st.Vocabulary
		out.BuiltAt = &builtAt
		out.BuildMS = st.BuildDuration.Milliseconds()
		out.Blocks = make([]models.FeatureBlock, len(st.Blocks))
		for i, b := range st.Blocks {
			out.Blocks[i] = models.FeatureBlock{
				Name:   b.Name,
				Start:  b.Offset,
				Width:  b.Width,
				Weight: out.Weights[b.Name],
			}
		}
		meta.CatalogHash = st.Hash
	}
	respondSuccess(w, r, out, meta)
}
