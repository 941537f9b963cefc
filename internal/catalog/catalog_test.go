// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `ID,Titre,Résumé,Casting,Réalisateurs,Genre,Pays_origine,Durée,Année_de_sortie,Note_moyenne,Nombre_votes,Poster1,Poster2
tt01,Nova,A young pilot,Ann Lee,Jo Park,"Animation, Adventure","['France', 'USA']",95,2001,8.0,60000,/a.jpg,
tt02,Nova,A grim tale,Bo Kim,Al Ray,Drama,['USA'],120,2015.0,6.0,20000,,//cdn/b.jpg
tt03,Nova,Robots again,Ann Lee,Jo Park,Animation,France,88,2015,7.5,9000,,
tt04,Quiet Fields,Farm life,,Mia Roe,Documentary,,,1999,,100,,
`

func readSample(t *testing.T) *Catalog {
	t.Helper()
	movies, err := ReadCSV(context.Background(), strings.NewReader(sampleCSV), "sample", DefaultLoadOptions())
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	cat, err := New(movies)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return cat
}

func TestReadCSV_Decodes(t *testing.T) {
	cat := readSample(t)
	if cat.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", cat.Len())
	}

	m, ok := cat.ByID("tt01")
	if !ok {
		t.Fatal("ByID(tt01) not found")
	}
	if m.Title != "Nova" || m.Year != 2001 || m.Duration != 95 || !m.HasRating || m.Rating != 8.0 {
		t.Errorf("unexpected movie: %+v", m)
	}
	if !reflect.DeepEqual(m.Genres, []string{"Animation", "Adventure"}) {
		t.Errorf("Genres = %v", m.Genres)
	}
	if !reflect.DeepEqual(m.Countries, []string{"France", "USA"}) {
		t.Errorf("Countries = %v", m.Countries)
	}
	if m.Popularity != TierVeryPopular {
		t.Errorf("Popularity = %q, want %q", m.Popularity, TierVeryPopular)
	}

	b, _ := cat.ByID("tt02")
	if b.Year != 2015 {
		t.Errorf("float-formatted year decoded as %d", b.Year)
	}

	d, _ := cat.ByID("tt04")
	if d.HasRating {
		t.Error("blank rating should leave HasRating false")
	}
	if d.Duration != 0 || d.Cast != "" || d.Producers != "" {
		t.Errorf("missing values should default to zero: %+v", d)
	}
	if d.Popularity != TierLowProfile {
		t.Errorf("Popularity = %q, want %q", d.Popularity, TierLowProfile)
	}
}

func TestReadCSV_MissingID(t *testing.T) {
	_, err := ReadCSV(context.Background(), strings.NewReader("Titre,Genre\nNova,Drama\n"), "noid.csv", DefaultLoadOptions())
	var mrc *MissingRequiredColumnError
	if !errors.As(err, &mrc) {
		t.Fatalf("error = %v, want MissingRequiredColumnError", err)
	}
	if mrc.Column != ColID {
		t.Errorf("Column = %q, want %q", mrc.Column, ColID)
	}
	if !errors.Is(err, ErrMissingRequiredColumn) {
		t.Error("error should match ErrMissingRequiredColumn")
	}
}

func TestReadCSV_TrimmedHeaderAndRatingFallback(t *testing.T) {
	in := " ID ; Titre ;vote_average\nx1;Alpha;7.2\n"
	opts := DefaultLoadOptions()
	opts.Delimiter = ';'
	movies, err := ReadCSV(context.Background(), strings.NewReader(in), "semi", opts)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(movies) != 1 || movies[0].ID != "x1" || movies[0].Title != "Alpha" {
		t.Fatalf("movies = %+v", movies)
	}
	if !movies[0].HasRating || movies[0].Rating != 7.2 {
		t.Errorf("rating fallback not used: %+v", movies[0])
	}
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(context.Background(), strings.NewReader(""), "empty", DefaultLoadOptions())
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("error = %v, want ErrEmptyCatalog", err)
	}
}

func TestNew_DropsBlankAndDuplicateIDs(t *testing.T) {
	cat, err := New([]Movie{{ID: "a", Title: "first"}, {ID: ""}, {ID: "a", Title: "second"}, {ID: "b"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if cat.Len() != 2 || cat.Dropped() != 2 {
		t.Errorf("Len() = %d, Dropped() = %d", cat.Len(), cat.Dropped())
	}
	if m, _ := cat.ByID("a"); m.Title != "first" {
		t.Errorf("duplicate ID should keep first row, got %q", m.Title)
	}
	if pos, _ := cat.Position("b"); pos != 1 {
		t.Errorf("Position(b) = %d, want 1", pos)
	}

	if _, err := New(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("New(nil) error = %v", err)
	}
}

func TestContentHash(t *testing.T) {
	a := readSample(t)
	b := readSample(t)
	if a.ContentHash() != b.ContentHash() {
		t.Error("identical content should hash identically")
	}
	if len(a.ContentHash()) != 64 {
		t.Errorf("hash length = %d", len(a.ContentHash()))
	}

	c, err := New([]Movie{{ID: "tt01", Title: "Other"}})
	if err != nil {
		t.Fatal(err)
	}
	if c.ContentHash() == a.ContentHash() {
		t.Error("different content should hash differently")
	}
}

func TestCSVSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := Open(path, "", LoadOptions{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if src.Path() != path {
		t.Errorf("Path() = %q", src.Path())
	}
	cat, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cat.Len() != 4 {
		t.Errorf("Len() = %d", cat.Len())
	}
}

func TestOpen_UnknownFormat(t *testing.T) {
	if _, err := Open("x.csv", "xml", LoadOptions{}); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := Open("", "csv", LoadOptions{}); err == nil {
		t.Error("expected error for empty path")
	}
}
