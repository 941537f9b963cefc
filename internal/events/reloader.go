// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/metrics"
	"github.com/tomtom215/cinereco/internal/recommend"
)

// ArtifactLoader is the engine side of a reload.
type ArtifactLoader interface {
	Load(ctx context.Context, cat *catalog.Catalog) (*recommend.Artifacts, bool, error)
}

// ReloadStatus is the outcome of the last reload.
type ReloadStatus struct {
	At      time.Time `json:"at"`
	Hash    string    `json:"hash,omitempty"`
	Movies  int       `json:"movies"`
	Dropped int       `json:"dropped"`
	Reused  bool      `json:"reused"`
	Err     string    `json:"error,omitempty"`
}

// Reloader reloads the catalog source and swaps engine artifacts.
type Reloader struct {
	source catalog.Source
	format string
	engine ArtifactLoader
	logger zerolog.Logger

	// reloadMu orders reloads so the last one to run reads the newest file.
	reloadMu sync.Mutex

	mu   sync.Mutex
	last ReloadStatus
}

// NewReloader creates a reloader for source.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewReloader(source catalog.Source, format string, engine ArtifactLoader, logger zerolog.Logger) *Reloader {
	return &Reloader{
		source: source,
		format: format,
		engine: engine,
		logger: logger.With().Str("component", "reloader").Logger(),
	}
}

// Reload loads the source and hands it to the engine. It is the initial
// load at startup and the catalog.changed handler afterwards. Concurrent
// calls run one at a time.
func (r *Reloader) Reload(ctx context.Context) (*recommend.Artifacts, error) {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	cat, err := r.source.Load(ctx)
	metrics.RecordCatalogLoad(r.format, err)
	if err != nil {
		r.record(ReloadStatus{At: time.Now(), Err: err.Error()})
		return nil, fmt.Errorf("load catalog %s: %w", r.source.Path(), err)
	}

	art, reused, err := r.engine.Load(ctx, cat)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("failed").Inc()
		r.record(ReloadStatus{At: time.Now(), Movies: cat.Len(), Err: err.Error()})
		return nil, err
	}

	outcome := "rebuilt"
	if reused {
		outcome = "memoized"
	}
	metrics.CatalogReloads.WithLabelValues(outcome).Inc()
	r.record(ReloadStatus{
		At:      time.Now(),
		Hash:    cat.ContentHash(),
		Movies:  cat.Len(),
		Dropped: cat.Dropped(),
		Reused:  reused,
	})

	ev := r.logger.Info()
	if cat.Dropped() > 0 {
		ev = r.logger.Warn()
	}
	ev.Str("path", r.source.Path()).
		Int("movies", cat.Len()).
		Int("dropped_rows", cat.Dropped()).
		Bool("memoized", reused).
		Msg("catalog loaded")
	return art, nil
}

// HandleCatalogChanged is the router handler for TopicCatalogChanged.
//
//nolint:gocritic // CatalogChanged is passed by value for immutable semantics
func (r *Reloader) HandleCatalogChanged(ctx context.Context, ev CatalogChanged) error {
	r.logger.Info().
		Str("path", ev.Path).
		Str("reason", ev.Reason).
		Time("mod_time", ev.ModTime).
		Msg("catalog change received")
	_, err := r.Reload(ctx)
	return err
}

// Last returns the outcome of the most recent reload.
func (r *Reloader) Last() ReloadStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

//nolint:gocritic // ReloadStatus is small
func (r *Reloader) record(s ReloadStatus) {
	r.mu.Lock()
	r.last = s
	r.mu.Unlock()
}
