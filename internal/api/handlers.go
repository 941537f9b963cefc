// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"time"

	"github.com/tomtom215/cinereco/internal/events"
	"github.com/tomtom215/cinereco/internal/recommend"
)

// ReloadStatusProvider reports the last catalog reload.
type ReloadStatusProvider interface {
	Last() events.ReloadStatus
}

// HandlerConfig holds what handlers need besides the engine.
type HandlerConfig struct {
	CatalogPath   string
	CatalogFormat string
	PosterBaseURL string
	Version       string

	// SearchLimit is the default hit count of /movies. Default: 20.
	SearchLimit int
}

// Handler serves the API endpoints.
type Handler struct {
	engine    *recommend.Engine
	reloads   ReloadStatusProvider
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates the API handler. reloads may be nil.
//
//nolint:gocritic // HandlerConfig is copied once at startup
func NewHandler(engine *recommend.Engine, reloads ReloadStatusProvider, cfg HandlerConfig) *Handler {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 20
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Handler{
		engine:    engine,
		reloads:   reloads,
		config:    cfg,
		startTime: time.Now(),
	}
}
