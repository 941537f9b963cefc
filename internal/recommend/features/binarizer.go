// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package features

import "sort"

// Binarizer one-hot encodes multi-valued labels: one column per distinct
// label seen while fitting, in sorted order.
type Binarizer struct {
	classes []string
	index   map[string]int
}

// NewBinarizer creates an unfitted binarizer.
func NewBinarizer() *Binarizer {
	return &Binarizer{}
}

// FitTransform learns the label set and encodes every row.
func (b *Binarizer) FitTransform(labels [][]string) *Matrix {
	seen := make(map[string]struct{})
	for _, row := range labels {
		for _, l := range row {
			seen[l] = struct{}{}
		}
	}
	b.classes = make([]string, 0, len(seen))
	for l := range seen {
		b.classes = append(b.classes, l)
	}
	sort.Strings(b.classes)
	b.index = make(map[string]int, len(b.classes))
	for i, l := range b.classes {
		b.index[l] = i
	}

	m, _ := b.Transform(labels)
	return m
}

// Transform encodes rows with the fitted label set. Unknown labels are ignored.
func (b *Binarizer) Transform(labels [][]string) (*Matrix, error) {
	if b.index == nil {
		return nil, ErrNotFitted
	}
	m := &Matrix{Rows: make([]Vector, len(labels)), Cols: len(b.classes)}
	for i, row := range labels {
		hits := make(map[int]float64, len(row))
		for _, l := range row {
			if idx, ok := b.index[l]; ok {
				hits[idx] = 1
			}
		}
		m.Rows[i] = fromCounts(hits)
	}
	return m, nil
}

// Classes returns the fitted labels in column order.
func (b *Binarizer) Classes() []string { return b.classes }
