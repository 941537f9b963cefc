// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separatorPattern matches runs of list separators found in merged text columns.
var separatorPattern = regexp.MustCompile(`[,|;/]+`)

// Normalize lowercases s, replaces runs of ',', '|', ';' and '/' with a single
// space, collapses whitespace and trims. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = separatorPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Fold returns s lowercased with diacritics removed (NFKD, combining marks
// dropped). Whitespace is collapsed the same way Normalize does.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// FoldTitle folds a title for exact-match comparison.
func FoldTitle(s string) string {
	return Fold(strings.TrimSpace(s))
}
