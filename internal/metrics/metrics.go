// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Artifact build metrics
	ArtifactBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_artifact_builds_total",
			Help: "Artifact builds by result",
		},
		[]string{"result"}, // "success", "error"
	)

	ArtifactBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinereco_artifact_build_duration_seconds",
			Help:    "Time to vectorize the catalog and build the neighbor index",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	ArtifactCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinereco_artifact_cache_hits_total",
			Help: "Catalog loads served by memoized artifacts",
		},
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinereco_catalog_movies",
			Help: "Movies in the served catalog",
		},
	)

	FeatureColumns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinereco_feature_columns",
			Help: "Columns of the assembled feature matrix",
		},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_catalog_load_errors_total",
			Help: "Failed catalog loads by source format",
		},
		[]string{"format"},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_catalog_reloads_total",
			Help: "Catalog change events by outcome",
		},
		[]string{"outcome"}, // "rebuilt", "memoized", "throttled", "failed"
	)

	CatalogLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinereco_catalog_last_load_timestamp_seconds",
			Help: "Unix time of the last successful catalog load",
		},
	)

	// Recommendation metrics
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinereco_recommend_duration_seconds",
			Help:    "Recommendation latency",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"endpoint"}, // "recommend", "tiered"
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinereco_recommend_results",
			Help:    "Rows returned per recommendation",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 250, 500, 1000},
		},
	)

	RecommendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_recommend_errors_total",
			Help: "Recommendation failures by endpoint and kind",
		},
		[]string{"endpoint", "kind"},
	)

	ResultCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_result_cache_hits_total",
			Help: "Recommendation results served from cache",
		},
		[]string{"tier"}, // "memory", "persistent"
	)

	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinereco_result_cache_misses_total",
			Help: "Recommendation results computed",
		},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_api_requests_total",
			Help: "API requests by method, route and status",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinereco_api_request_duration_seconds",
			Help:    "API request duration",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinereco_api_active_requests",
			Help: "API requests in flight",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_api_rate_limit_hits_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Event bus metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_events_published_total",
			Help: "Messages published by topic",
		},
		[]string{"topic"},
	)

	EventsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinereco_events_handled_total",
			Help: "Messages handled by topic and result",
		},
		[]string{"topic", "result"},
	)
)

// RecordAPIRequest records one served API request.
func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogLoad records a catalog load attempt.
func RecordCatalogLoad(format string, err error) {
	if err != nil {
		CatalogLoadErrors.WithLabelValues(format).Inc()
		return
	}
	CatalogLastLoad.Set(float64(time.Now().Unix()))
}

// RecordEvent records a handled bus message.
func RecordEvent(topic string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsHandled.WithLabelValues(topic, result).Inc()
}
