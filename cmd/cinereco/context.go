// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/config"
	"github.com/tomtom215/cinereco/internal/logging"
	"github.com/tomtom215/cinereco/internal/recommend"
)

type rootFlags struct {
	config  string
	catalog string
	format  string
	json    bool
	verbose bool
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	engineOnce sync.Once
	engine     *recommend.Engine
	engineErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once, applies the flag overrides
// and points logging at the command's stderr.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		var (
			cfg *config.Config
			err error
		)
		if path := strings.TrimSpace(c.flags.config); path != "" {
			cfg, err = config.LoadFile(path)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			c.configErr = err
			return
		}
		if v := strings.TrimSpace(c.flags.catalog); v != "" {
			cfg.Catalog.Path = v
		}
		if v := strings.TrimSpace(c.flags.format); v != "" {
			cfg.Catalog.Format = strings.ToLower(v)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = fmt.Errorf("invalid flags: %w", err)
			return
		}

		level := "warn"
		if c.flags.verbose {
			level = "debug"
		}
		logging.Init(logging.Config{
			Level:     level,
			Format:    "console",
			Timestamp: true,
			Output:    cmd.ErrOrStderr(),
		})
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureEngine loads the catalog and builds its artifacts once.
func (c *commandContext) ensureEngine(ctx context.Context) (*recommend.Engine, error) {
	c.engineOnce.Do(func() {
		cfg := c.config
		if cfg == nil {
			c.engineErr = fmt.Errorf("configuration not loaded")
			return
		}
		logger := logging.WithComponent("cli")

		source, err := cfg.Catalog.Source()
		if err != nil {
			c.engineErr = err
			return
		}
		cat, err := source.Load(ctx)
		if err != nil {
			c.engineErr = fmt.Errorf("load catalog %s: %w", source.Path(), err)
			return
		}
		if cat.Dropped() > 0 {
			logger.Warn().Int("dropped", cat.Dropped()).Msg("Catalog rows without an ID were dropped")
		}

		engine, err := recommend.NewEngine(&cfg.Recommend, logger)
		if err != nil {
			c.engineErr = err
			return
		}
		if _, _, err := engine.Load(ctx, cat); err != nil {
			c.engineErr = fmt.Errorf("build artifacts: %w", err)
			return
		}
		c.engine = engine
	})
	return c.engine, c.engineErr
}

func (c *commandContext) catalog(ctx context.Context) (*catalog.Catalog, error) {
	engine, err := c.ensureEngine(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Artifacts().Catalog(), nil
}

func (c *commandContext) posterBase() string {
	if c.config == nil {
		return catalog.DefaultPosterBaseURL
	}
	return c.config.Catalog.PosterBaseURL
}
