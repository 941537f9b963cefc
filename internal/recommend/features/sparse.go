// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package features

import (
	"math"
	"sort"
)

// Vector is a sparse row. Indices are strictly increasing.
type Vector struct {
	Indices []int
	Values  []float64
}

// Matrix is a row-major sparse matrix.
type Matrix struct {
	Rows []Vector
	Cols int
}

// NNZ returns the number of stored entries.
func (v Vector) NNZ() int { return len(v.Indices) }

// Norm returns the L2 norm of v.
func (v Vector) Norm() float64 {
	var s float64
	for _, x := range v.Values {
		s += x * x
	}
	return math.Sqrt(s)
}

// Normalized returns v scaled to unit L2 norm. A zero vector is returned as is.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scaled(1 / n)
}

// Scaled returns a copy of v with every value multiplied by f.
func (v Vector) Scaled(f float64) Vector {
	out := Vector{
		Indices: append([]int(nil), v.Indices...),
		Values:  make([]float64, len(v.Values)),
	}
	for i, x := range v.Values {
		out.Values[i] = x * f
	}
	return out
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) float64 {
	var s float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			s += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return s
}

// fromCounts builds a sorted Vector from a column->value map, skipping zeros.
func fromCounts(m map[int]float64) Vector {
	v := Vector{
		Indices: make([]int, 0, len(m)),
		Values:  make([]float64, 0, len(m)),
	}
	for idx := range m {
		if m[idx] != 0 {
			v.Indices = append(v.Indices, idx)
		}
	}
	sort.Ints(v.Indices)
	for _, idx := range v.Indices {
		v.Values = append(v.Values, m[idx])
	}
	return v
}

// fromDense builds a Vector from a dense slice, skipping zeros.
func fromDense(d []float64) Vector {
	var v Vector
	for i, x := range d {
		if x != 0 {
			v.Indices = append(v.Indices, i)
			v.Values = append(v.Values, x)
		}
	}
	return v
}

// Dense expands v to width cols.
func (v Vector) Dense(cols int) []float64 {
	d := make([]float64, cols)
	for i, idx := range v.Indices {
		if idx < cols {
			d[idx] = v.Values[i]
		}
	}
	return d
}
