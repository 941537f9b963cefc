// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

/*
Package api serves the recommendation engine over HTTP with chi.

All routes live under /api/v1 and answer with the models.APIResponse
envelope:

	GET /api/v1/health                  overall status
	GET /api/v1/health/live             process is up
	GET /api/v1/health/ready            artifacts are built (503 before)
	GET /api/v1/movies?q=&limit=        title search
	GET /api/v1/movies/{id}             movie detail with poster URL
	GET /api/v1/recommendations         ranked recommendations with badges
	GET /api/v1/recommendations/tiered  popularity-tiered grouping
	GET /api/v1/catalog/status          content hash, sizes, build timings
	GET /metrics                        Prometheus exposition

Resolution failures map to HTTP statuses: NotFound 404, Ambiguous 409 with
the candidates in error.details, NoMatchAfterFilters 422 with the
available options, invalid input 400 VALIDATION_ERROR, and no artifacts yet
503 CATALOG_NOT_READY.

Middleware order: request ID, real IP, panic recovery, CORS, access log,
metrics, rate limiting, security headers, request timeout.
*/
package api
