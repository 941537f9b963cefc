// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package models

import "time"

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeAmbiguous           = "AMBIGUOUS"
	ErrCodeNoMatchAfterFilters = "NO_MATCH_AFTER_FILTERS"
	ErrCodeCatalogNotReady     = "CATALOG_NOT_READY"
	ErrCodeRateLimited         = "RATE_LIMITED"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// APIResponse is the envelope of every API answer.
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data,omitempty"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata describes how the response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	CatalogHash string    `json:"catalog_hash,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable failure.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string    `json:"status"` // "healthy", "degraded", "unhealthy"
	Version       string    `json:"version"`
	CatalogLoaded bool      `json:"catalog_loaded"`
	Movies        int       `json:"movies"`
	Uptime        float64   `json:"uptime_seconds"`
	Timestamp     time.Time `json:"timestamp"`
}
