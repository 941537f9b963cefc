// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "Christopher NOLAN", "christopher nolan"},
		{"separators", "Tom Hanks, Meg Ryan|Bill Pullman;;Rosie/O'Donnell", "tom hanks meg ryan bill pullman rosie o'donnell"},
		{"whitespace", "  a \t\n b   ", "a b"},
		{"mixed run", "a , | b", "a b"},
		{"accents kept", "Amélie", "amélie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "A, B | C", "  Jean-Pierre Jeunet ; Marc Caro ", "x//y,,z", "Éric Rohmer"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Amélie", "amelie"},
		{"HORREUR", "horreur"},
		{"Comédie  Musicale", "comedie musicale"},
		{"Mystère", "mystere"},
		{"Ça", "ca"},
	}

	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"bracketed literal", "['France', 'USA']", []string{"France", "USA"}},
		{"double quotes", `["France", "United Kingdom"]`, []string{"France", "United Kingdom"}},
		{"plain", "France, USA", []string{"France", "USA"}},
		{"semicolon", "France; USA", []string{"France", "USA"}},
		{"empty tokens dropped", "Drama,, ,Comedy,", []string{"Drama", "Comedy"}},
		{"empty literal", "[]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseList_FormsAgree(t *testing.T) {
	a := ParseList("['Drama', 'Animation']")
	b := ParseList("Drama, Animation")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("literal form %v != plain form %v", a, b)
	}
}

func TestParseFoldedList(t *testing.T) {
	got := ParseFoldedList("Comédie, comedie, Horreur")
	want := []string{"comedie", "horreur"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFoldedList = %v, want %v", got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"A young wizard", []string{"young", "wizard"}},
		{"L'été de 1999!", []string{"ete", "de", "1999"}},
		{"snake_case x y", []string{"snake_case"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNGrams(t *testing.T) {
	got := NGrams([]string{"dark", "knight", "rises"}, 1, 2)
	want := []string{"dark", "knight", "rises", "dark knight", "knight rises"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NGrams = %v, want %v", got, want)
	}
}

func TestStopwordSet(t *testing.T) {
	en, err := StopwordSet("")
	if err != nil {
		t.Fatalf("StopwordSet(\"\") error = %v", err)
	}
	if _, ok := en["the"]; !ok {
		t.Error("english set missing \"the\"")
	}

	fr, err := StopwordSet("french")
	if err != nil {
		t.Fatalf("StopwordSet(french) error = %v", err)
	}
	if _, ok := fr["ete"]; !ok {
		t.Error("french set should hold folded \"ete\"")
	}

	none, err := StopwordSet("none")
	if err != nil || len(none) != 0 {
		t.Errorf("StopwordSet(none) = %v, %v", none, err)
	}

	if _, err := StopwordSet("klingon"); err == nil {
		t.Error("expected error for unknown language")
	}
}

func TestRemoveStopwords(t *testing.T) {
	stop := map[string]struct{}{"the": {}, "of": {}}
	got := RemoveStopwords([]string{"the", "lord", "of", "the", "rings"}, stop)
	want := []string{"lord", "rings"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveStopwords = %v, want %v", got, want)
	}
}
