// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package features

import (
	"fmt"
	"math"
)

// Scaler standardizes dense numeric columns to zero mean and unit variance,
// using the population variance. A constant column keeps scale 1.
type Scaler struct {
	mean  []float64
	scale []float64
}

// NewScaler creates an unfitted scaler.
func NewScaler() *Scaler {
	return &Scaler{}
}

// FitTransform learns per-column mean and scale from rows and standardizes them.
// Every row must have the same width.
func (s *Scaler) FitTransform(rows [][]float64) (*Matrix, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	s.mean = make([]float64, width)
	s.scale = make([]float64, width)

	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(r), width)
		}
		for j, x := range r {
			s.mean[j] += x
		}
	}
	n := float64(len(rows))
	for j := range s.mean {
		if n > 0 {
			s.mean[j] /= n
		}
	}
	for _, r := range rows {
		for j, x := range r {
			d := x - s.mean[j]
			s.scale[j] += d * d
		}
	}
	for j := range s.scale {
		sd := 0.0
		if n > 0 {
			sd = math.Sqrt(s.scale[j] / n)
		}
		if sd == 0 {
			sd = 1
		}
		s.scale[j] = sd
	}

	return s.Transform(rows)
}

// Transform standardizes rows with the fitted parameters.
func (s *Scaler) Transform(rows [][]float64) (*Matrix, error) {
	if s.scale == nil {
		return nil, ErrNotFitted
	}
	width := len(s.scale)
	m := &Matrix{Rows: make([]Vector, len(rows)), Cols: width}
	buf := make([]float64, width)
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(r), width)
		}
		for j, x := range r {
			buf[j] = (x - s.mean[j]) / s.scale[j]
		}
		m.Rows[i] = fromDense(buf)
	}
	return m, nil
}

// Mean returns the fitted column means.
func (s *Scaler) Mean() []float64 { return s.mean }

// Scale returns the fitted column standard deviations.
func (s *Scaler) Scale() []float64 { return s.scale }
