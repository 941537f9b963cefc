// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

/*
Package middleware provides the chi-compatible HTTP middleware of the API.

  - RequestID assigns or propagates X-Request-ID and stores it, with a
    request-scoped zerolog logger, in the request context.
  - Metrics records Prometheus request counts, durations and in-flight
    requests, labeled by chi route pattern so path parameters do not
    explode label cardinality.
  - AccessLog writes one structured log line per request and warns about
    slow ones.

Order matters: RequestID must run before AccessLog so log lines carry the ID.

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(500 * time.Millisecond))
	r.Use(middleware.Metrics)
*/
package middleware
