// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/cinereco/internal/metrics"
)

// RouterConfig holds router settings.
type RouterConfig struct {
	// CloseTimeout bounds how long Close waits for running handlers.
	CloseTimeout time.Duration

	// Retry settings. RetryMaxRetries 0 disables retrying.
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64
}

// DefaultRouterConfig returns production defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 500 * time.Millisecond,
		RetryMaxInterval:     30 * time.Second,
		RetryMultiplier:      2.0,
	}
}

// CatalogHandler processes one catalog change.
type CatalogHandler func(ctx context.Context, ev CatalogChanged) error

// Router dispatches bus messages to handlers.
type Router struct {
	router *message.Router
	logger watermill.LoggerAdapter
}

// NewRouter creates a router. Handler panics become errors, errors are
// retried with backoff, and what still fails is logged and dropped.
func NewRouter(cfg RouterConfig, logger watermill.LoggerAdapter) (*Router, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	r, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	rt := &Router{router: r, logger: logger}
	r.AddMiddleware(rt.dropFailed)
	if cfg.RetryMaxRetries > 0 {
		retry := middleware.Retry{
			MaxRetries:      cfg.RetryMaxRetries,
			InitialInterval: cfg.RetryInitialInterval,
			MaxInterval:     cfg.RetryMaxInterval,
			Multiplier:      cfg.RetryMultiplier,
			Logger:          logger,
		}
		r.AddMiddleware(retry.Middleware)
	}
	r.AddMiddleware(middleware.Recoverer)

	return rt, nil
}

// dropFailed acknowledges messages whose handler still fails after the
// retries, since the gochannel would otherwise redeliver them forever.
func (r *Router) dropFailed(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		out, err := h(msg)
		if err != nil {
			r.logger.Error("handler failed after retries, dropping message", err, watermill.LogFields{
				"uuid":  msg.UUID,
				"topic": message.SubscribeTopicFromCtx(msg.Context()),
			})
			return nil, nil
		}
		return out, nil
	}
}

// HandleCatalogChanged registers h for TopicCatalogChanged on sub.
func (r *Router) HandleCatalogChanged(name string, sub message.Subscriber, h CatalogHandler) {
	r.router.AddConsumerHandler(name, TopicCatalogChanged, sub, func(msg *message.Message) error {
		ev, err := DecodeCatalogChanged(msg)
		if err != nil {
			// Malformed payloads never succeed on retry.
			metrics.RecordEvent(TopicCatalogChanged, err)
			r.logger.Error("dropping malformed message", err, watermill.LogFields{"uuid": msg.UUID})
			return nil
		}
		err = h(msg.Context(), ev)
		metrics.RecordEvent(TopicCatalogChanged, err)
		return err
	})
}

// Run blocks until ctx is done or Close is called.
func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running is closed once every handler is subscribed.
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

// Close stops the router.
func (r *Router) Close() error {
	return r.router.Close()
}
