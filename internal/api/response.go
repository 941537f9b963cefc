// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinereco/internal/logging"
	"github.com/tomtom215/cinereco/internal/models"
	"github.com/tomtom215/cinereco/internal/recommend"
	"github.com/tomtom215/cinereco/internal/validation"
)

// respondJSON writes the envelope with an ETag over the encoded body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	if response.Metadata.Timestamp.IsZero() {
		response.Metadata.Timestamp = time.Now()
	}
	if response.Metadata.RequestID == "" {
		response.Metadata.RequestID = logging.RequestIDFromContext(r.Context())
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("failed to write JSON response")
	}
}

// respondSuccess writes a 200 envelope around data.
func respondSuccess(w http.ResponseWriter, r *http.Request, data any, meta models.Metadata) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: meta,
	})
}

// generateETag is an FNV-1a hash of the body.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError writes an error envelope. err is logged, never sent.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]any, err error) {
	if err != nil {
		ev := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			ev = logging.Ctx(r.Context()).Error()
		}
		ev.Err(err).Str("code", code).Int("status", status).Msg("API error")
	}
	respondJSON(w, r, status, &models.APIResponse{
		Status: models.StatusError,
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondValidationError writes a 400 VALIDATION_ERROR.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
}

// respondEngineError maps engine and resolver errors onto the envelope.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound  *recommend.NotFoundError
		ambiguous *recommend.AmbiguousError
		noMatch   *recommend.NoMatchAfterFiltersError
		invalid   *recommend.InvalidQueryError
	)
	switch {
	case errors.As(err, &notFound):
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, notFound.Error(),
			map[string]any{"selector": notFound.Selector}, nil)
	case errors.As(err, &ambiguous):
		respondError(w, r, http.StatusConflict, models.ErrCodeAmbiguous,
			"Several movies match; add a year or a director, or pick an id",
			map[string]any{"selector": ambiguous.Selector, "candidates": toOptions(ambiguous.Candidates)}, nil)
	case errors.As(err, &noMatch):
		respondError(w, r, http.StatusUnprocessableEntity, models.ErrCodeNoMatchAfterFilters,
			"The title exists but no version matches the year or director",
			map[string]any{"selector": noMatch.Selector, "options": toOptions(noMatch.Options)}, nil)
	case errors.As(err, &invalid):
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, invalid.Error(),
			map[string]any{"field": invalid.Field, "reason": invalid.Reason}, nil)
	case errors.Is(err, recommend.ErrNotReady):
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeCatalogNotReady,
			"The catalog is still loading, retry shortly", nil, nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, models.ErrCodeTimeout, "Request timed out", nil, err)
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("request canceled")
	default:
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "Failed to compute recommendations", nil, err)
	}
}
