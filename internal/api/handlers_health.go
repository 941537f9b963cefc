// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinereco/internal/models"
)

// Health reports overall status. It always answers 200; a server still
// loading its catalog is "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:    "healthy",
		Version:   h.config.Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now(),
	}
	if art := h.engine.Artifacts(); art != nil {
		status.CatalogLoaded = true
		status.Movies = art.Len()
	} else {
		status.Status = "degraded"
	}
	if h.reloads != nil && h.reloads.Last().Err != "" && status.CatalogLoaded {
		// Still serving the previous catalog.
		status.Status = "degraded"
	}
	respondSuccess(w, r, status, models.Metadata{})
}

// HealthLive answers 200 while the process is running.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]string{"status": "alive"}, models.Metadata{})
}

// HealthReady answers 200 once artifacts are built, 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	art := h.engine.Artifacts()
	if art == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeCatalogNotReady, "Catalog not loaded yet", nil, nil)
		return
	}
	respondSuccess(w, r, map[string]any{"status": "ready", "movies": art.Len()},
		models.Metadata{CatalogHash: art.Hash()})
}
