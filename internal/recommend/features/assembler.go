// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package features

import "fmt"

// Block names in assembly order.
const (
	BlockGenre      = "genre"
	BlockCountry    = "country"
	BlockSummary    = "summary"
	BlockCast       = "cast"
	BlockDirector   = "director"
	BlockPopularity = "popularity"
	BlockNumeric    = "numeric"
)

// Weights is the relative contribution of each block. Only relative
// magnitudes matter because the assembled rows are renormalized.
type Weights struct {
	Genre      float64 `koanf:"genre" json:"genre"`
	Country    float64 `koanf:"country" json:"country"`
	Summary    float64 `koanf:"summary" json:"summary"`
	Cast       float64 `koanf:"cast" json:"cast"`
	Director   float64 `koanf:"director" json:"director"`
	Popularity float64 `koanf:"popularity" json:"popularity"`
	Numeric    float64 `koanf:"numeric" json:"numeric"`
}

// DefaultWeights returns the reference weight profile.
func DefaultWeights() Weights {
	return Weights{
		Genre:      0.20,
		Country:    0.25,
		Summary:    0.30,
		Cast:       0.10,
		Director:   0.20,
		Popularity: 0.05,
		Numeric:    0.10,
	}
}

// Validate requires non-negative weights with at least one positive.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Validate() error {
	positive := false
	for name, v := range w.ToMap() {
		if v < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, v)
		}
		if v > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("at least one block weight must be positive")
	}
	return nil
}

// ToMap returns the weights keyed by block name.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		BlockGenre:      w.Genre,
		BlockCountry:    w.Country,
		BlockSummary:    w.Summary,
		BlockCast:       w.Cast,
		BlockDirector:   w.Director,
		BlockPopularity: w.Popularity,
		BlockNumeric:    w.Numeric,
	}
}

// Block is one named feature block with its weight.
type Block struct {
	Name   string
	Weight float64
	Matrix *Matrix
}

// Span records where a block landed in the assembled columns.
type Span struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Width  int    `json:"width"`
}

// Assemble concatenates blocks column-wise. Each block row is L2-normalized
// and multiplied by its weight, then the whole row is L2-normalized again.
// All blocks must have the same number of rows.
func Assemble(blocks []Block) (*Matrix, []Span, error) {
	if len(blocks) == 0 {
		return nil, nil, fmt.Errorf("no feature blocks")
	}
	rows := len(blocks[0].Matrix.Rows)
	spans := make([]Span, len(blocks))
	offset := 0
	for i, b := range blocks {
		if b.Matrix == nil {
			return nil, nil, fmt.Errorf("block %q has no matrix", b.Name)
		}
		if len(b.Matrix.Rows) != rows {
			return nil, nil, fmt.Errorf("block %q has %d rows, want %d", b.Name, len(b.Matrix.Rows), rows)
		}
		if b.Weight < 0 {
			return nil, nil, fmt.Errorf("block %q has negative weight %f", b.Name, b.Weight)
		}
		spans[i] = Span{Name: b.Name, Offset: offset, Width: b.Matrix.Cols}
		offset += b.Matrix.Cols
	}

	out := &Matrix{Rows: make([]Vector, rows), Cols: offset}
	for r := 0; r < rows; r++ {
		var row Vector
		for i, b := range blocks {
			if b.Weight == 0 {
				continue
			}
			part := b.Matrix.Rows[r]
			n := part.Norm()
			if n == 0 {
				continue
			}
			f := b.Weight / n
			for k, idx := range part.Indices {
				row.Indices = append(row.Indices, spans[i].Offset+idx)
				row.Values = append(row.Values, part.Values[k]*f)
			}
		}
		out.Rows[r] = row.Normalized()
	}
	return out, spans, nil
}
