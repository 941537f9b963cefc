// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinereco/internal/middleware"
	"github.com/tomtom215/cinereco/internal/models"
)

// slowRequest is the access log threshold for warn-level lines.
const slowRequest = 500 * time.Millisecond

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	requestTimeout time.Duration
}

// NewRouter creates a router. requestTimeout <= 0 disables the per-request
// deadline.
func NewRouter(handler *Handler, mw *ChiMiddleware, requestTimeout time.Duration) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw, requestTimeout: requestTimeout}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.AccessLog(slowRequest))
	r.Use(middleware.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No such endpoint", nil, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil, nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("api"))
		r.Use(APISecurityHeaders())
		if router.requestTimeout > 0 {
			r.Use(chimiddleware.Timeout(router.requestTimeout))
		}

		r.Get("/movies", router.handler.SearchMovies)
		r.Get("/movies/{id}", router.handler.GetMovie)
		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/recommendations/tiered", router.handler.TieredRecommendations)
		r.Get("/catalog/status", router.handler.CatalogStatus)
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}
