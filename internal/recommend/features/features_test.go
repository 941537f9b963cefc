// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package features

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestTFIDF_FitTransform(t *testing.T) {
	v, err := NewTFIDF(DefaultTFIDFConfig())
	if err != nil {
		t.Fatalf("NewTFIDF() error = %v", err)
	}

	docs := []string{
		"The red apple",
		"red pear",
		"green Apple",
		"blue sky",
		"", // empty doc
	}
	m := v.FitTransform(docs)

	if got, want := v.Vocabulary(), []string{"apple", "red"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Vocabulary() = %v, want %v", got, want)
	}
	if m.Cols != 2 || len(m.Rows) != len(docs) {
		t.Fatalf("matrix shape = %dx%d", len(m.Rows), m.Cols)
	}

	idf, ok := v.IDF("red")
	if !ok || !almostEqual(idf, math.Log(6.0/3.0)+1) {
		t.Errorf("IDF(red) = %v, %v", idf, ok)
	}

	row0 := m.Rows[0]
	if row0.NNZ() != 2 || !almostEqual(row0.Values[0], 1/math.Sqrt2) || !almostEqual(row0.Values[1], 1/math.Sqrt2) {
		t.Errorf("row 0 = %+v", row0)
	}
	if !almostEqual(m.Rows[1].Norm(), 1) {
		t.Errorf("row 1 not unit norm: %v", m.Rows[1].Norm())
	}
	if m.Rows[3].NNZ() != 0 || m.Rows[4].NNZ() != 0 {
		t.Error("rows without vocabulary terms should be empty")
	}
}

func TestTFIDF_MaxDFAndBigrams(t *testing.T) {
	v, err := NewTFIDF(DefaultTFIDFConfig())
	if err != nil {
		t.Fatal(err)
	}
	docs := []string{
		"movie dark knight",
		"movie dark knight returns",
		"movie light comedy",
		"movie light comedy again",
	}
	v.FitTransform(docs)

	if _, ok := v.IDF("movie"); ok {
		t.Error("term present in every document should be pruned by max_df")
	}
	for _, term := range []string{"dark knight", "light comedy", "dark", "knight"} {
		if _, ok := v.IDF(term); !ok {
			t.Errorf("expected %q in vocabulary", term)
		}
	}
	if _, ok := v.IDF("returns"); ok {
		t.Error("term seen once should be pruned by min_df")
	}
}

func TestTFIDF_Transform(t *testing.T) {
	v, _ := NewTFIDF(DefaultTFIDFConfig())
	if _, err := v.Transform([]string{"x"}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Transform before fit error = %v", err)
	}

	v.FitTransform([]string{"space opera", "space opera saga", "western"})
	m, err := v.Transform([]string{"Space unknownword", "nothing"})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if m.Rows[0].NNZ() != 1 || !almostEqual(m.Rows[0].Norm(), 1) {
		t.Errorf("row 0 = %+v", m.Rows[0])
	}
	if m.Rows[1].NNZ() != 0 {
		t.Errorf("unknown text should be empty, got %+v", m.Rows[1])
	}
}

func TestTFIDFConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TFIDFConfig)
		wantErr bool
	}{
		{"default", func(*TFIDFConfig) {}, false},
		{"ngram min", func(c *TFIDFConfig) { c.NGramMin = 0 }, true},
		{"ngram order", func(c *TFIDFConfig) { c.NGramMax = 0 }, true},
		{"min df", func(c *TFIDFConfig) { c.MinDF = 0 }, true},
		{"max df", func(c *TFIDFConfig) { c.MaxDF = 1.5 }, true},
		{"stopwords", func(c *TFIDFConfig) { c.Stopwords = "latin" }, true},
		{"french", func(c *TFIDFConfig) { c.Stopwords = "french" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTFIDFConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBinarizer(t *testing.T) {
	b := NewBinarizer()
	m := b.FitTransform([][]string{{"drama", "horror"}, {"animation"}, nil, {"drama", "drama"}})

	if got, want := b.Classes(), []string{"animation", "drama", "horror"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(m.Rows[0].Indices, []int{1, 2}) {
		t.Errorf("row 0 indices = %v", m.Rows[0].Indices)
	}
	if m.Rows[2].NNZ() != 0 {
		t.Error("empty label row should be empty")
	}
	if m.Rows[3].NNZ() != 1 || m.Rows[3].Values[0] != 1 {
		t.Errorf("duplicate labels should set one column to 1: %+v", m.Rows[3])
	}

	out, err := b.Transform([][]string{{"western", "animation"}})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out.Rows[0].Indices, []int{0}) {
		t.Errorf("unknown labels should be ignored: %+v", out.Rows[0])
	}

	if _, err := NewBinarizer().Transform(nil); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Transform before fit error = %v", err)
	}
}

func TestScaler(t *testing.T) {
	s := NewScaler()
	m, err := s.FitTransform([][]float64{{90, 2000, 5}, {110, 2010, 5}})
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	if !reflect.DeepEqual(s.Mean(), []float64{100, 2005, 5}) {
		t.Errorf("Mean() = %v", s.Mean())
	}
	if !reflect.DeepEqual(s.Scale(), []float64{10, 5, 1}) {
		t.Errorf("Scale() = %v", s.Scale())
	}
	got := m.Rows[0].Dense(3)
	if !reflect.DeepEqual(got, []float64{-1, -1, 0}) {
		t.Errorf("row 0 = %v", got)
	}

	if _, err := s.FitTransform([][]float64{{1, 2}, {1}}); err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestAssemble(t *testing.T) {
	a := &Matrix{Rows: []Vector{fromDense([]float64{3, 4}), {}}, Cols: 2}
	b := &Matrix{Rows: []Vector{fromDense([]float64{0, 2}), fromDense([]float64{1, 0})}, Cols: 2}

	m, spans, err := Assemble([]Block{
		{Name: "a", Weight: 0.3, Matrix: a},
		{Name: "b", Weight: 0.4, Matrix: b},
	})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if m.Cols != 4 || len(m.Rows) != 2 {
		t.Fatalf("shape = %dx%d", len(m.Rows), m.Cols)
	}
	if !reflect.DeepEqual(spans, []Span{{"a", 0, 2}, {"b", 2, 2}}) {
		t.Errorf("spans = %+v", spans)
	}

	row := m.Rows[0].Dense(4)
	// Block a normalized to (0.6, 0.8) * 0.3, block b to (0, 1) * 0.4, total norm 0.5.
	want := []float64{0.36, 0.48, 0, 0.8}
	for i := range want {
		if !almostEqual(row[i], want[i]) {
			t.Fatalf("row 0 = %v, want %v", row, want)
		}
	}
	if !almostEqual(m.Rows[1].Norm(), 1) {
		t.Errorf("row 1 norm = %v", m.Rows[1].Norm())
	}
}

func TestAssemble_ZeroRowAndErrors(t *testing.T) {
	a := &Matrix{Rows: []Vector{{}}, Cols: 3}
	m, _, err := Assemble([]Block{{Name: "a", Weight: 1, Matrix: a}})
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows[0].NNZ() != 0 {
		t.Error("all-zero row should stay zero")
	}

	if _, _, err := Assemble(nil); err == nil {
		t.Error("expected error for no blocks")
	}
	b := &Matrix{Rows: []Vector{{}, {}}, Cols: 1}
	if _, _, err := Assemble([]Block{{Name: "a", Weight: 1, Matrix: a}, {Name: "b", Weight: 1, Matrix: b}}); err == nil {
		t.Error("expected error for mismatched row counts")
	}
}

func TestWeights_Validate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
	if err := (Weights{}).Validate(); err == nil {
		t.Error("all-zero weights should be invalid")
	}
	if err := (Weights{Genre: -1, Cast: 1}).Validate(); err == nil {
		t.Error("negative weight should be invalid")
	}
}

func TestDot(t *testing.T) {
	a := Vector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := Vector{Indices: []int{2, 3, 5}, Values: []float64{4, 9, 1}}
	if got := Dot(a, b); got != 11 {
		t.Errorf("Dot() = %v, want 11", got)
	}
}
