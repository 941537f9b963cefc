// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinereco/internal/logging"
	"github.com/tomtom215/cinereco/internal/metrics"
)

// Bus is the in-process publish/subscribe channel.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter
}

// NewBus creates a bus that logs through logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBus(logger zerolog.Logger) *Bus {
	wl := NewLogger(logger)
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			// Change notifications are coalescable; a small buffer is enough.
			OutputChannelBuffer: 16,
		}, wl),
		logger: wl,
	}
}

// NewLogger adapts a zerolog logger for watermill through slog.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLogger(logger zerolog.Logger) watermill.LoggerAdapter {
	return watermill.NewSlogLogger(logging.NewSlogLogger(logger.With().Str("component", "events").Logger()))
}

// Publisher returns the publishing side.
func (b *Bus) Publisher() message.Publisher { return b.pubsub }

// Subscriber returns the subscribing side.
func (b *Bus) Subscriber() message.Subscriber { return b.pubsub }

// Logger returns the watermill logger of the bus.
func (b *Bus) Logger() watermill.LoggerAdapter { return b.logger }

// PublishCatalogChanged publishes ev on TopicCatalogChanged.
//
//nolint:gocritic // CatalogChanged is passed by value for immutable semantics
func (b *Bus) PublishCatalogChanged(ctx context.Context, ev CatalogChanged, source string) error {
	msg, err := NewCatalogChangedMessage(ev, source)
	if err != nil {
		return err
	}
	msg.SetContext(ctx)
	if err := b.pubsub.Publish(TopicCatalogChanged, msg); err != nil {
		return fmt.Errorf("publish %s: %w", TopicCatalogChanged, err)
	}
	metrics.EventsPublished.WithLabelValues(TopicCatalogChanged).Inc()
	return nil
}

// Close closes the bus. Subscriptions end.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
