// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

// Package index provides an exact cosine nearest-neighbor index over an
// assembled feature matrix.
//
// Rows are expected to be L2-normalized (or all zero), so cosine similarity is
// a plain dot product and distance is 1 - dot. The index is built once and is
// read-only afterward, which makes queries safe for concurrent use.
package index

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tomtom215/cinereco/internal/recommend/features"
)

// ErrRowOutOfRange is returned when a query names a row the index does not hold.
var ErrRowOutOfRange = errors.New("row out of range")

// Neighbor is one result of a neighbor query.
type Neighbor struct {
	Row      int     `json:"row"`
	Distance float64 `json:"distance"`
}

// Cosine is a brute-force cosine index. Every query scans all rows; with
// catalogs of tens of thousands of movies and sparse rows this stays in the
// low milliseconds.
type Cosine struct {
	rows []features.Vector
	cols int

	// scratch holds dense query buffers of length cols.
	scratch sync.Pool
}

// NewCosine builds an index over m. The matrix is not copied and must not be
// modified afterward.
func NewCosine(m *features.Matrix) (*Cosine, error) {
	if m == nil {
		return nil, fmt.Errorf("nil matrix")
	}
	c := &Cosine{rows: m.Rows, cols: m.Cols}
	c.scratch.New = func() any {
		buf := make([]float64, c.cols)
		return &buf
	}
	return c, nil
}

// Len returns the number of indexed rows.
func (c *Cosine) Len() int { return len(c.rows) }

// Neighbors returns the k rows closest to row, sorted by ascending distance
// with ties broken by ascending row index. The query row itself is always
// part of the result at distance 0. k is clamped to the number of rows.
func (c *Cosine) Neighbors(row, k int) ([]Neighbor, error) {
	if row < 0 || row >= len(c.rows) {
		return nil, fmt.Errorf("%w: %d (rows: %d)", ErrRowOutOfRange, row, len(c.rows))
	}
	if k <= 0 {
		return []Neighbor{}, nil
	}
	if k > len(c.rows) {
		k = len(c.rows)
	}

	bufPtr := c.scratch.Get().(*[]float64) //nolint:errcheck // pool only holds *[]float64
	dense := *bufPtr
	q := c.rows[row]
	for i, idx := range q.Indices {
		dense[idx] = q.Values[i]
	}

	top := newTopK(k)
	top.offer(Neighbor{Row: row, Distance: 0}, row)
	for r, v := range c.rows {
		if r == row {
			continue
		}
		var dot float64
		for i, idx := range v.Indices {
			dot += dense[idx] * v.Values[i]
		}
		top.offer(Neighbor{Row: r, Distance: clampDistance(1 - dot)}, row)
	}

	for _, idx := range q.Indices {
		dense[idx] = 0
	}
	c.scratch.Put(bufPtr)

	return top.sorted(row), nil
}

// Distance returns the cosine distance between two indexed rows.
func (c *Cosine) Distance(a, b int) (float64, error) {
	if a < 0 || a >= len(c.rows) || b < 0 || b >= len(c.rows) {
		return 0, fmt.Errorf("%w: %d, %d", ErrRowOutOfRange, a, b)
	}
	if a == b {
		return 0, nil
	}
	return clampDistance(1 - features.Dot(c.rows[a], c.rows[b])), nil
}

func clampDistance(d float64) float64 {
	switch {
	case d < 0:
		return 0
	case d > 2:
		return 2
	default:
		return d
	}
}

// before reports whether a ranks ahead of b. The self row wins ties.
func before(a, b Neighbor, self int) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if (a.Row == self) != (b.Row == self) {
		return a.Row == self
	}
	return a.Row < b.Row
}

// topK is a bounded max-heap: the root is the worst neighbor kept so far.
type topK struct {
	items []Neighbor
	limit int
}

func newTopK(limit int) *topK {
	return &topK{items: make([]Neighbor, 0, limit), limit: limit}
}

func (h *topK) offer(n Neighbor, self int) {
	if len(h.items) < h.limit {
		h.items = append(h.items, n)
		h.up(len(h.items)-1, self)
		return
	}
	if !before(n, h.items[0], self) {
		return
	}
	h.items[0] = n
	h.down(0, self)
}

func (h *topK) up(i, self int) {
	for i > 0 {
		parent := (i - 1) / 2
		// parent must rank after (be worse than) child
		if !before(h.items[parent], h.items[i], self) {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *topK) down(i, self int) {
	n := len(h.items)
	for {
		worst := i
		left, right := 2*i+1, 2*i+2
		if left < n && before(h.items[worst], h.items[left], self) {
			worst = left
		}
		if right < n && before(h.items[worst], h.items[right], self) {
			worst = right
		}
		if worst == i {
			return
		}
		h.items[i], h.items[worst] = h.items[worst], h.items[i]
		i = worst
	}
}

func (h *topK) sorted(self int) []Neighbor {
	out := make([]Neighbor, len(h.items))
	copy(out, h.items)
	sort.Slice(out, func(i, j int) bool { return before(out[i], out[j], self) })
	return out
}
