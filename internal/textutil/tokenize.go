// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package textutil

import (
	"strings"
	"unicode"
)

// Tokenize folds text and splits it into word tokens of two or more
// characters. A word character is a letter, a digit or '_'.
func Tokenize(text string) []string {
	folded := Fold(text)
	if folded == "" {
		return nil
	}
	tokens := make([]string, 0, len(folded)/5+1)
	var b strings.Builder
	n := 0
	flush := func() {
		if n >= 2 {
			tokens = append(tokens, b.String())
		}
		b.Reset()
		n = 0
	}
	for _, r := range folded {
		if isWordRune(r) {
			b.WriteRune(r)
			n++
			continue
		}
		flush()
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NGrams returns the n-grams of tokens for every n in [minN, maxN], joined by a
// single space. Unigrams come first, then bigrams, and so on.
func NGrams(tokens []string, minN, maxN int) []string {
	if minN < 1 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}
	out := make([]string, 0, len(tokens)*(maxN-minN+1))
	for n := minN; n <= maxN; n++ {
		if n == 1 {
			out = append(out, tokens...)
			continue
		}
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
