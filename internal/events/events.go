// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package events

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

// TopicCatalogChanged is published when the catalog file changes.
const TopicCatalogChanged = "catalog.changed"

// Metadata keys set on every message.
const (
	MetadataEventType = "event_type"
	MetadataSource    = "source"
)

// Change reasons.
const (
	ReasonModified = "modified"
	ReasonCreated  = "created"
	ReasonManual   = "manual"
)

// CatalogChanged describes a detected change of the catalog file.
type CatalogChanged struct {
	Path       string    `json:"path"`
	Format     string    `json:"format"`
	Reason     string    `json:"reason"`
	Size       int64     `json:"size"`
	ModTime    time.Time `json:"mod_time"`
	DetectedAt time.Time `json:"detected_at"`
}

// NewCatalogChangedMessage encodes ev as a watermill message.
//
//nolint:gocritic // CatalogChanged is passed by value for immutable semantics
func NewCatalogChangedMessage(ev CatalogChanged, source string) (*message.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", TopicCatalogChanged, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(MetadataEventType, TopicCatalogChanged)
	msg.Metadata.Set(MetadataSource, source)
	return msg, nil
}

// DecodeCatalogChanged decodes a catalog.changed payload.
func DecodeCatalogChanged(msg *message.Message) (CatalogChanged, error) {
	var ev CatalogChanged
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return CatalogChanged{}, fmt.Errorf("decode %s message %s: %w", TopicCatalogChanged, msg.UUID, err)
	}
	if ev.Path == "" {
		return CatalogChanged{}, fmt.Errorf("decode %s message %s: empty path", TopicCatalogChanged, msg.UUID)
	}
	return ev, nil
}
