// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/recommend"
)

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Recommend recommend.Config `koanf:"recommend"`
	Cache     CacheConfig      `koanf:"cache"`
	Events    EventsConfig     `koanf:"events"`
	Security  SecurityConfig   `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is trace, debug, info, warn or error. Default: info
	Level string `koanf:"level"`

	// Format is json or console. Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to log lines.
	Caller bool `koanf:"caller"`
}

// CatalogConfig locates and decodes the movie table.
type CatalogConfig struct {
	// Path is the CSV or Parquet file.
	Path string `koanf:"path"`

	// Format is csv or duckdb. Default: csv
	Format string `koanf:"format"`

	// Delimiter is the CSV field separator, one character. Default: ","
	Delimiter string `koanf:"delimiter"`

	// WatchInterval is how often the file is checked for changes.
	// Zero disables watching. Default: 30s
	WatchInterval time.Duration `koanf:"watch_interval"`

	// MinRebuildInterval spaces artifact rebuilds. Default: 1m
	MinRebuildInterval time.Duration `koanf:"min_rebuild_interval"`

	// PosterBaseURL prefixes TMDB-relative poster paths.
	PosterBaseURL string `koanf:"poster_base_url"`

	// Popularity thresholds derive tiers when the table has none.
	Popularity catalog.PopularityThresholds `koanf:"popularity"`
}

// CacheConfig holds persistent cache settings. In-memory caching is
// configured under recommend.cache.
type CacheConfig struct {
	// PersistPath is the Badger directory for cached results.
	// Empty disables the persistent cache.
	PersistPath string `koanf:"persist_path"`
}

// EventsConfig tunes the in-process event router.
type EventsConfig struct {
	RetryCount           int           `koanf:"retry_count"`
	RetryInitialInterval time.Duration `koanf:"retry_initial_interval"`
	CloseTimeout         time.Duration `koanf:"close_timeout"`
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// LoadOptions converts the catalog section into decoder options.
func (c CatalogConfig) LoadOptions() catalog.LoadOptions {
	opts := catalog.DefaultLoadOptions()
	if r := []rune(c.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	opts.Popularity = c.Popularity
	return opts
}

// Source opens the configured catalog source.
func (c CatalogConfig) Source() (catalog.Source, error) {
	return catalog.Open(c.Path, c.Format, c.LoadOptions())
}

// defaultConfig returns every default. Environment and file values are
// layered on top of it.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			RequestTimeout:  20 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			Path:               "/data/movies.csv",
			Format:             catalog.FormatCSV,
			Delimiter:          ",",
			WatchInterval:      30 * time.Second,
			MinRebuildInterval: time.Minute,
			PosterBaseURL:      catalog.DefaultPosterBaseURL,
			Popularity:         catalog.DefaultPopularityThresholds(),
		},
		Recommend: *recommend.DefaultConfig(),
		Events: EventsConfig{
			RetryCount:           3,
			RetryInitialInterval: 500 * time.Millisecond,
			CloseTimeout:         10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
		},
	}
}
