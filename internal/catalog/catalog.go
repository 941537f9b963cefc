// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
)

// Catalog is an immutable, position-indexed set of movies.
// Position i of Movies() is row i of every matrix built from it.
// It is safe for concurrent use; callers must not modify returned movies.
type Catalog struct {
	movies  []Movie
	byID    map[string]int
	hash    string
	dropped int
}

// New builds a Catalog from decoded rows. Rows with a blank ID are dropped,
// and when an ID repeats only its first row is kept. The number of dropped
// rows is reported by Dropped.
func New(movies []Movie) (*Catalog, error) {
	kept := make([]Movie, 0, len(movies))
	byID := make(map[string]int, len(movies))
	dropped := 0
	for i := range movies {
		id := movies[i].ID
		if id == "" {
			dropped++
			continue
		}
		if _, dup := byID[id]; dup {
			dropped++
			continue
		}
		byID[id] = len(kept)
		kept = append(kept, movies[i])
	}
	if len(kept) == 0 {
		return nil, ErrEmptyCatalog
	}

	hash, err := contentHash(kept)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		movies:  kept,
		byID:    byID,
		hash:    hash,
		dropped: dropped,
	}, nil
}

// contentHash fingerprints the decoded rows, so two files with the same
// content share artifacts regardless of path or mtime.
func contentHash(movies []Movie) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for i := range movies {
		if err := enc.Encode(&movies[i]); err != nil {
			return "", fmt.Errorf("hash movie %q: %w", movies[i].ID, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int { return len(c.movies) }

// Movies returns the rows in position order.
func (c *Catalog) Movies() []Movie { return c.movies }

// At returns the movie at position i.
func (c *Catalog) At(i int) *Movie { return &c.movies[i] }

// ContentHash returns the hex SHA-256 of the catalog content.
func (c *Catalog) ContentHash() string { return c.hash }

// Dropped reports how many input rows were discarded by New.
func (c *Catalog) Dropped() int { return c.dropped }

// Position returns the row index of id.
func (c *Catalog) Position(id string) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// ByID returns the movie with the given ID.
func (c *Catalog) ByID(id string) (*Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.movies[i], true
}
