// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinereco/internal/events"
)

// RouterFactory builds a router with its handlers registered. A closed
// watermill router cannot run again, so every start gets a new one.
type RouterFactory func() (*events.Router, error)

// EventRouterService runs the event router under supervision.
type EventRouterService struct {
	factory RouterFactory
	logger  zerolog.Logger
	name    string
}

// NewEventRouterService creates the wrapper.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEventRouterService(factory RouterFactory, logger zerolog.Logger) *EventRouterService {
	return &EventRouterService{
		factory: factory,
		logger:  logger.With().Str("service", "event-router").Logger(),
		name:    "event-router",
	}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	router, err := s.factory()
	if err != nil {
		return fmt.Errorf("build event router: %w", err)
	}
	defer func() {
		if cerr := router.Close(); cerr != nil {
			s.logger.Warn().Err(cerr).Msg("event router close")
		}
	}()

	s.logger.Info().Msg("event router starting")
	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("event router: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("event router stopped unexpectedly")
}

// String implements fmt.Stringer for suture logs.
func (s *EventRouterService) String() string {
	return s.name
}
