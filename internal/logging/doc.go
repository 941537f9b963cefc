// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package logging holds the process-wide zerolog logger.
//
// Init configures it once from the logging section of the configuration.
// Components take a child logger and keep it:
//
//	logger := logging.WithComponent("watcher")
//	logger.Info().Str("path", path).Msg("catalog changed")
//
// Request-scoped fields travel on the context. The API middleware stores the
// request ID there and handlers log through Ctx:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("recommendation failed")
//
// Libraries that expect a *slog.Logger (the supervisor event hook) get one
// from NewSlogLogger, which forwards every record to zerolog.
//
// Always end an event chain with Msg or Send, or nothing is written.
package logging
