// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/logging"
)

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.request_timeout":  c.Server.RequestTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	switch strings.ToLower(c.Server.Environment) {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a log level", c.Logging.Level)
	}
	if f := strings.ToLower(c.Logging.Format); f != "json" && f != "console" {
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if c.Events.RetryCount < 0 {
		return fmt.Errorf("events.retry_count must not be negative, got %d", c.Events.RetryCount)
	}
	if c.Events.CloseTimeout <= 0 {
		return fmt.Errorf("events.close_timeout must be positive, got %v", c.Events.CloseTimeout)
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	if c.Server.IsProduction() {
		for _, o := range c.Security.CORSOrigins {
			if o == "*" {
				return fmt.Errorf("security.cors_origins must not contain * in production")
			}
		}
	}
	return nil
}

func (c *Config) validateCatalog() error {
	cc := c.Catalog
	if strings.TrimSpace(cc.Path) == "" {
		return fmt.Errorf("catalog.path is required")
	}
	switch strings.ToLower(cc.Format) {
	case catalog.FormatCSV, catalog.FormatDuckDB:
	default:
		return fmt.Errorf("catalog.format must be %s or %s, got %q", catalog.FormatCSV, catalog.FormatDuckDB, cc.Format)
	}
	if n := len([]rune(cc.Delimiter)); n != 1 {
		return fmt.Errorf("catalog.delimiter must be one character, got %q", cc.Delimiter)
	}
	if cc.WatchInterval < 0 {
		return fmt.Errorf("catalog.watch_interval must not be negative, got %v", cc.WatchInterval)
	}
	if cc.MinRebuildInterval < 0 {
		return fmt.Errorf("catalog.min_rebuild_interval must not be negative, got %v", cc.MinRebuildInterval)
	}
	if cc.PosterBaseURL != "" {
		u, err := url.Parse(cc.PosterBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("catalog.poster_base_url must be an http(s) URL, got %q", cc.PosterBaseURL)
		}
	}
	if err := cc.Popularity.Validate(); err != nil {
		return fmt.Errorf("catalog.popularity: %w", err)
	}
	return nil
}
