// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinereco/internal/api"
	"github.com/tomtom215/cinereco/internal/cache"
	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/config"
	"github.com/tomtom215/cinereco/internal/events"
	"github.com/tomtom215/cinereco/internal/logging"
	"github.com/tomtom215/cinereco/internal/recommend"
	"github.com/tomtom215/cinereco/internal/supervisor"
	"github.com/tomtom215/cinereco/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()

	logging.Info().
		Str("version", version).
		Str("catalog", cfg.Catalog.Path).
		Str("format", cfg.Catalog.Format).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Cinereco with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := recommend.NewEngine(&cfg.Recommend, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	store := openResultStore(cfg.Cache.PersistPath)
	if store != nil {
		engine.SetResultStore(store)
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing result store")
			}
		}()
	}

	source, err := cfg.Catalog.Source()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open catalog source")
	}
	reloader := events.NewReloader(source, cfg.Catalog.Format, engine, logger)

	// Initial load. A missing file starts the server not ready and the
	// watcher picks the file up once it appears.
	if _, err := reloader.Reload(ctx); err != nil {
		if errors.Is(err, catalog.ErrMissingRequiredColumn) {
			logging.Fatal().Err(err).Msg("Catalog is unusable")
		}
		logging.Warn().Err(err).Msg("Initial catalog load failed, serving not ready")
	}

	bus := events.NewBus(logger)
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === DATA LAYER ===

	tree.AddDataService(services.NewEventRouterService(routerFactory(cfg, bus, reloader), logger))
	if cfg.Catalog.WatchInterval > 0 {
		tree.AddDataService(services.NewCatalogWatcherService(services.CatalogWatcherConfig{
			Path:               cfg.Catalog.Path,
			Format:             cfg.Catalog.Format,
			Interval:           cfg.Catalog.WatchInterval,
			MinRebuildInterval: cfg.Catalog.MinRebuildInterval,
		}, bus, logger))
		logging.Info().
			Dur("interval", cfg.Catalog.WatchInterval).
			Dur("min_rebuild_interval", cfg.Catalog.MinRebuildInterval).
			Msg("Catalog watcher added to supervisor tree")
	} else {
		logging.Info().Msg("Catalog watching disabled (CATALOG_WATCH_INTERVAL=0)")
	}

	// === API LAYER ===

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(engine, reloader, api.HandlerConfig{
		CatalogPath:   cfg.Catalog.Path,
		CatalogFormat: cfg.Catalog.Format,
		PosterBaseURL: cfg.Catalog.PosterBaseURL,
		Version:       version,
	})
	mw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, mw, cfg.Server.RequestTimeout)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	// === START SUPERVISOR TREE ===

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	stats := engine.Stats()
	logging.Info().
		Int64("requests", stats.Requests).
		Int64("cache_hits", stats.CacheHits).
		Msg("Application stopped gracefully")
}

// routerFactory returns a factory building a fresh event router wired to
// the reloader. The router service calls it on every (re)start.
func routerFactory(cfg *config.Config, bus *events.Bus, reloader *events.Reloader) services.RouterFactory {
	rcfg := events.DefaultRouterConfig()
	if cfg.Events.RetryCount > 0 {
		rcfg.RetryMaxRetries = cfg.Events.RetryCount
	}
	if cfg.Events.RetryInitialInterval > 0 {
		rcfg.RetryInitialInterval = cfg.Events.RetryInitialInterval
	}
	if cfg.Events.CloseTimeout > 0 {
		rcfg.CloseTimeout = cfg.Events.CloseTimeout
	}

	return func() (*events.Router, error) {
		r, err := events.NewRouter(rcfg, bus.Logger())
		if err != nil {
			return nil, err
		}
		r.HandleCatalogChanged("catalog-reloader", bus.Subscriber(), reloader.HandleCatalogChanged)
		return r, nil
	}
}

// openResultStore opens the persistent result cache. Failure is not fatal:
// results are then cached in memory only.
func openResultStore(dir string) *cache.ResultStore {
	if dir == "" {
		logging.Info().Msg("Persistent result cache disabled (RESULT_CACHE_PATH unset)")
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		logging.Warn().Err(err).Str("path", dir).Msg("Failed to create result cache directory")
		return nil
	}
	store, err := cache.OpenResultStore(dir)
	if err != nil {
		logging.Warn().Err(err).Str("path", dir).Msg("Failed to open result cache, using memory only")
		return nil
	}
	logging.Info().Str("path", dir).Msg("Persistent result cache opened")
	return store
}
