// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package features

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/cinereco/internal/textutil"
)

// ErrNotFitted is returned when transforming with an unfitted extractor.
var ErrNotFitted = errors.New("extractor not fitted")

// TFIDFConfig configures a TF-IDF vectorizer.
type TFIDFConfig struct {
	// NGramMin and NGramMax bound the n-gram sizes. Default: 1 and 2.
	NGramMin int `koanf:"ngram_min" json:"ngram_min"`
	NGramMax int `koanf:"ngram_max" json:"ngram_max"`

	// MinDF is the minimum number of documents a term must appear in.
	// Default: 2.
	MinDF int `koanf:"min_df" json:"min_df"`

	// MaxDF is the maximum share of documents a term may appear in.
	// Default: 0.85.
	MaxDF float64 `koanf:"max_df" json:"max_df"`

	// Stopwords selects the stopword list: english, french or none.
	// Default: english.
	Stopwords string `koanf:"stopwords" json:"stopwords"`
}

// DefaultTFIDFConfig returns the settings used for every text field.
func DefaultTFIDFConfig() TFIDFConfig {
	return TFIDFConfig{
		NGramMin:  1,
		NGramMax:  2,
		MinDF:     2,
		MaxDF:     0.85,
		Stopwords: textutil.StopwordsEnglish,
	}
}

// Validate checks the configuration.
func (c TFIDFConfig) Validate() error {
	if c.NGramMin < 1 {
		return fmt.Errorf("tfidf.ngram_min must be positive, got %d", c.NGramMin)
	}
	if c.NGramMax < c.NGramMin {
		return fmt.Errorf("tfidf.ngram_max must be >= ngram_min, got %d < %d", c.NGramMax, c.NGramMin)
	}
	if c.MinDF < 1 {
		return fmt.Errorf("tfidf.min_df must be positive, got %d", c.MinDF)
	}
	if c.MaxDF <= 0 || c.MaxDF > 1 {
		return fmt.Errorf("tfidf.max_df must be in (0, 1], got %f", c.MaxDF)
	}
	if _, err := textutil.StopwordSet(c.Stopwords); err != nil {
		return fmt.Errorf("tfidf.stopwords: %w", err)
	}
	return nil
}

// TFIDF is a term-frequency / inverse-document-frequency vectorizer with a
// smoothed IDF, ln((1+n)/(1+df)) + 1, and L2-normalized output rows.
// The vocabulary is sorted so column order is deterministic.
type TFIDF struct {
	cfg   TFIDFConfig
	stop  map[string]struct{}
	vocab map[string]int
	terms []string
	idf   []float64
}

// NewTFIDF creates an unfitted vectorizer.
func NewTFIDF(cfg TFIDFConfig) (*TFIDF, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stop, err := textutil.StopwordSet(cfg.Stopwords)
	if err != nil {
		return nil, err
	}
	return &TFIDF{cfg: cfg, stop: stop}, nil
}

// analyze turns a document into its n-gram terms.
func (v *TFIDF) analyze(doc string) []string {
	tokens := textutil.RemoveStopwords(textutil.Tokenize(doc), v.stop)
	return textutil.NGrams(tokens, v.cfg.NGramMin, v.cfg.NGramMax)
}

// FitTransform learns the vocabulary and IDF weights from docs and returns
// their vectors. Terms outside [MinDF, MaxDF*len(docs)] documents are pruned.
// If nothing survives the vocabulary is empty and every row is zero-width.
func (v *TFIDF) FitTransform(docs []string) *Matrix {
	analyzed := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		terms := v.analyze(doc)
		analyzed[i] = terms
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	n := len(docs)
	maxCount := v.cfg.MaxDF * float64(n)
	terms := make([]string, 0, len(df))
	for t, c := range df {
		if c < v.cfg.MinDF || float64(c) > maxCount {
			continue
		}
		terms = append(terms, t)
	}
	sort.Strings(terms)

	v.terms = terms
	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}

	m := &Matrix{Rows: make([]Vector, n), Cols: len(terms)}
	for i, a := range analyzed {
		m.Rows[i] = v.vectorize(a)
	}
	return m
}

// Transform vectorizes docs with the frozen vocabulary. Unknown terms are ignored.
func (v *TFIDF) Transform(docs []string) (*Matrix, error) {
	if v.vocab == nil {
		return nil, ErrNotFitted
	}
	m := &Matrix{Rows: make([]Vector, len(docs)), Cols: len(v.terms)}
	for i, doc := range docs {
		m.Rows[i] = v.vectorize(v.analyze(doc))
	}
	return m, nil
}

func (v *TFIDF) vectorize(terms []string) Vector {
	counts := make(map[int]float64, len(terms))
	for _, t := range terms {
		if idx, ok := v.vocab[t]; ok {
			counts[idx]++
		}
	}
	for idx, c := range counts {
		counts[idx] = c * v.idf[idx]
	}
	return fromCounts(counts).Normalized()
}

// Vocabulary returns the fitted terms in column order.
func (v *TFIDF) Vocabulary() []string { return v.terms }

// IDF returns the weight of term and whether it is in the vocabulary.
func (v *TFIDF) IDF(term string) (float64, bool) {
	idx, ok := v.vocab[term]
	if !ok {
		return 0, false
	}
	return v.idf[idx], true
}
