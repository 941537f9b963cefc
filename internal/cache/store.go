// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// ResultStore persists JSON-encoded results in BadgerDB with per-entry TTL.
// Keys are namespaced by catalog content hash, so results computed against
// an older catalog are never served after a rebuild.
type ResultStore struct {
	db *badger.DB
}

// OpenResultStore opens (or creates) a store in dir. An empty dir opens an
// in-memory store.
func OpenResultStore(dir string) (*ResultStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB internal logs
	// Results are small; keep value log files small too
	opts.ValueLogFileSize = 16 << 20

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger result store: %w", err)
	}
	return &ResultStore{db: db}, nil
}

// StoreKey joins a catalog hash and a request key.
func StoreKey(catalogHash, requestKey string) []byte {
	return []byte(catalogHash + "/" + requestKey)
}

// Put stores value under key. A ttl of zero or less stores without expiry.
func (s *ResultStore) Put(ctx context.Context, key []byte, value interface{}, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, data)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Get decodes the value under key into dest. It reports false when absent or expired.
func (s *ResultStore) Get(ctx context.Context, key []byte, dest interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read result: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("unmarshal result: %w", err)
	}
	return true, nil
}

// DropCatalog deletes every entry stored for a catalog hash.
func (s *ResultStore) DropCatalog(catalogHash string) error {
	if err := s.db.DropPrefix([]byte(catalogHash + "/")); err != nil {
		return fmt.Errorf("drop results for %s: %w", catalogHash, err)
	}
	return nil
}

// Close flushes and closes the database.
func (s *ResultStore) Close() error {
	return s.db.Close()
}
