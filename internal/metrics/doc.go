// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package metrics defines the Prometheus collectors of the service.
//
// Collectors register with the default registry through promauto and are
// exposed by the API at /metrics. Names carry the cinereco_ prefix.
//
// Artifact builds:
//   - cinereco_artifact_builds_total{result}
//   - cinereco_artifact_build_duration_seconds
//   - cinereco_artifact_cache_hits_total
//   - cinereco_catalog_movies, cinereco_feature_columns
//
// Catalog reloads:
//   - cinereco_catalog_load_errors_total{format}
//   - cinereco_catalog_reloads_total{outcome}
//   - cinereco_catalog_last_load_timestamp_seconds
//
// Recommendations:
//   - cinereco_recommend_duration_seconds{endpoint}
//   - cinereco_recommend_results
//   - cinereco_recommend_errors_total{endpoint,kind}
//   - cinereco_result_cache_hits_total{tier}, cinereco_result_cache_misses_total
//
// HTTP:
//   - cinereco_api_requests_total{method,endpoint,status_code}
//   - cinereco_api_request_duration_seconds{method,endpoint}
//   - cinereco_api_active_requests
//   - cinereco_api_rate_limit_hits_total{endpoint}
//
// Event bus:
//   - cinereco_events_published_total{topic}
//   - cinereco_events_handled_total{topic,result}
package metrics
