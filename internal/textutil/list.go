// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package textutil

import "strings"

// listCleaner strips brackets and maps semicolons to commas.
var listCleaner = strings.NewReplacer("[", "", "]", "", ";", ",")

// ParseList turns a list-like field into trimmed tokens. It accepts the
// stringified form "['France', 'USA']" and the plain form "France, USA" and
// returns the same tokens for both. Blank input yields nil.
func ParseList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(listCleaner.Replace(s), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseFoldedList is ParseList with every token folded. Duplicates after
// folding are dropped, keeping first-seen order.
func ParseFoldedList(s string) []string {
	raw := ParseList(s)
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		f := Fold(tok)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// JoinList renders tokens back into the plain comma-separated form.
func JoinList(tokens []string) string {
	return strings.Join(tokens, ", ")
}
