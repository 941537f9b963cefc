// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package services

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinereco/internal/events"
)

// CatalogPublisher receives detected catalog changes.
type CatalogPublisher interface {
	PublishCatalogChanged(ctx context.Context, ev events.CatalogChanged, source string) error
}

// CatalogWatcherConfig configures CatalogWatcherService.
type CatalogWatcherConfig struct {
	// Path is the catalog file to watch.
	Path string

	// Format is copied into published events.
	Format string

	// Interval between polls. Default: 30s.
	Interval time.Duration

	// MinRebuildInterval is the least time between two published changes.
	// Changes seen sooner stay pending until the limiter allows them.
	// Zero disables throttling.
	MinRebuildInterval time.Duration
}

type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

func (s fileState) differs(o fileState) bool {
	return s.exists != o.exists || s.size != o.size || !s.modTime.Equal(o.modTime)
}

// CatalogWatcherService polls the catalog file and publishes
// catalog.changed when its size or modification time moves.
type CatalogWatcherService struct {
	cfg       CatalogWatcherConfig
	publisher CatalogPublisher
	limiter   *rate.Limiter
	logger    zerolog.Logger
	name      string

	stat func(string) (fs.FileInfo, error)
	now  func() time.Time

	// Poll state survives restarts so a restarted watcher does not miss
	// a change it had already seen.
	last    fileState
	seen    bool
	pending *events.CatalogChanged
}

// NewCatalogWatcherService creates the watcher.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCatalogWatcherService(cfg CatalogWatcherConfig, publisher CatalogPublisher, logger zerolog.Logger) *CatalogWatcherService {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	limit := rate.Inf
	if cfg.MinRebuildInterval > 0 {
		limit = rate.Every(cfg.MinRebuildInterval)
	}
	return &CatalogWatcherService{
		cfg:       cfg,
		publisher: publisher,
		limiter:   rate.NewLimiter(limit, 1),
		logger:    logger.With().Str("service", "catalog-watcher").Str("path", cfg.Path).Logger(),
		name:      "catalog-watcher",
		stat:      os.Stat,
		now:       time.Now,
	}
}

// Serve implements suture.Service.
func (w *CatalogWatcherService) Serve(ctx context.Context) error {
	if !w.seen {
		// The first observation is the baseline the server loaded at startup.
		w.last = w.observe()
		w.seen = true
	}
	w.logger.Info().Dur("interval", w.cfg.Interval).Dur("min_rebuild_interval", w.cfg.MinRebuildInterval).Msg("catalog watcher started")

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *CatalogWatcherService) poll(ctx context.Context) {
	cur := w.observe()
	if cur.differs(w.last) {
		prev := w.last
		w.last = cur
		switch {
		case !cur.exists:
			// Keep serving the last good artifacts until the file returns.
			w.logger.Warn().Msg("catalog file disappeared")
		default:
			reason := events.ReasonModified
			if !prev.exists {
				reason = events.ReasonCreated
			}
			w.pending = &events.CatalogChanged{
				Path:       w.cfg.Path,
				Format:     w.cfg.Format,
				Reason:     reason,
				Size:       cur.size,
				ModTime:    cur.modTime,
				DetectedAt: w.now(),
			}
		}
	}
	w.flush(ctx)
}

func (w *CatalogWatcherService) flush(ctx context.Context) {
	if w.pending == nil {
		return
	}
	if !w.limiter.Allow() {
		w.logger.Debug().Msg("catalog change pending, rebuild throttled")
		return
	}
	if err := w.publisher.PublishCatalogChanged(ctx, *w.pending, w.name); err != nil {
		w.logger.Error().Err(err).Msg("failed to publish catalog change")
		return
	}
	w.logger.Info().
		Str("reason", w.pending.Reason).
		Int64("size", w.pending.Size).
		Time("mod_time", w.pending.ModTime).
		Msg("catalog change published")
	w.pending = nil
}

func (w *CatalogWatcherService) observe() fileState {
	info, err := w.stat(w.cfg.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			w.logger.Warn().Err(err).Msg("stat catalog file")
		}
		return fileState{}
	}
	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}
}

// Pending reports whether a change is waiting on the limiter.
func (w *CatalogWatcherService) Pending() bool {
	return w.pending != nil
}

// String implements fmt.Stringer for suture logs.
func (w *CatalogWatcherService) String() string {
	return w.name
}
