// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

const testCatalogCSV = "ID,Titre,Résumé,Casting,Réalisateurs,Genre,Pays_origine,Durée,Année_de_sortie,Note_moyenne,Nombre_votes\n" +
	"m1,Nova,a robot drifts in deep space,Anna Bell,Jean Luc,Science-Fiction,France,95,2001,8.0,60000\n" +
	"m2,Nova,a robot drifts back home,Paul Roy,Claire Denis,Science-Fiction,France,110,2015,6.0,20000\n" +
	"m3,Orbit,a robot lost in deep space,Anna Bell,Jean Luc,Science-Fiction,France,100,2010,7.5,9000\n" +
	"m4,Harbor Lights,a family drama by the sea,Lea Marin,Claire Denis,Drame,France,125,1999,6.8,3000\n" +
	"m5,Ghost House,a haunted house in deep space,Tom Gray,Sam Raimi,Horreur,USA,90,2005,5.5,12000\n"

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(testCatalogCSV), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func runCLI(t *testing.T, catalogPath string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--catalog", catalogPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}

func requireNotContains(t *testing.T, out, unwanted string) {
	t.Helper()
	if strings.Contains(out, unwanted) {
		t.Fatalf("output unexpectedly contains %q:\n%s", unwanted, out)
	}
}

func TestRecommendCommand(t *testing.T) {
	path := writeCatalog(t)

	t.Run("gate keeps horror out", func(t *testing.T) {
		out, _, err := runCLI(t, path, "recommend", "--id", "m3")
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		requireContains(t, out, "Reference: Orbit (2010)")
		requireContains(t, out, "Nova")
		requireNotContains(t, out, "Ghost House")
	})

	t.Run("gate disabled", func(t *testing.T) {
		out, _, err := runCLI(t, path, "recommend", "--id", "m3", "--gate=false")
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		requireContains(t, out, "Ghost House")
	})

	t.Run("title with year", func(t *testing.T) {
		out, _, err := runCLI(t, path, "recommend", "Nova", "--year", "2015")
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		requireContains(t, out, "Reference: Nova (2015) by Claire Denis")
	})

	t.Run("filters leave nothing", func(t *testing.T) {
		out, _, err := runCLI(t, path, "recommend", "--id", "m3", "--min-rating", "9.5")
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		requireContains(t, out, "No similar movies match the filters")
	})
}

func TestRecommendCommand_ResolutionErrors(t *testing.T) {
	path := writeCatalog(t)

	tests := []struct {
		name    string
		args    []string
		wantOut []string
		wantErr string
	}{
		{
			name:    "ambiguous title lists candidates",
			args:    []string{"recommend", "nova"},
			wantOut: []string{"2 movies match", "m1", "m2"},
			wantErr: "ambiguous reference",
		},
		{
			name:    "no year match lists options",
			args:    []string{"recommend", "Nova", "--year", "2020"},
			wantOut: []string{"Nothing matches", "m1", "m2"},
			wantErr: "no movie matches",
		},
		{
			name:    "unknown title",
			args:    []string{"recommend", "Nowhere"},
			wantErr: "not found",
		},
		{
			name:    "missing selector",
			args:    []string{"recommend"},
			wantErr: "selector",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, path, tt.args...)
			if err == nil {
				t.Fatalf("expected error, got output:\n%s", out)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
			for _, want := range tt.wantOut {
				requireContains(t, out, want)
			}
		})
	}
}

func TestTieredCommand(t *testing.T) {
	path := writeCatalog(t)

	out, _, err := runCLI(t, path, "tiered", "--id", "m3", "--gate=false", "--per-tier", "1")
	if err != nil {
		t.Fatalf("tiered: %v", err)
	}
	requireContains(t, out, "Très populaire (1)")
	requireContains(t, out, "Populaire (1)")
	requireContains(t, out, "Peu populaire (1)")
	requireNotContains(t, out, "Harbor Lights")
}

func TestSearchCommand(t *testing.T) {
	path := writeCatalog(t)

	out, _, err := runCLI(t, path, "search", "nova")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	first, second := strings.Index(out, "m1"), strings.Index(out, "m2")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected m1 before m2 (more votes first):\n%s", out)
	}
	requireNotContains(t, out, "Orbit")

	out, _, err = runCLI(t, path, "search", "zzz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "No matching movies")

	if _, _, err := runCLI(t, path, "search", "--limit", "-1"); err == nil {
		t.Error("negative limit should fail")
	}
}

func TestShowCommand(t *testing.T) {
	path := writeCatalog(t)

	out, _, err := runCLI(t, path, "show", "m4")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Harbor Lights")
	requireContains(t, out, "Drame")
	requireContains(t, out, "2h05")

	if _, _, err := runCLI(t, path, "show", "m99"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("show m99 error = %v, want not found", err)
	}
}

func TestJSONOutput(t *testing.T) {
	path := writeCatalog(t)

	out, _, err := runCLI(t, path, "--json", "recommend", "--id", "m1", "--top", "2")
	if err != nil {
		t.Fatalf("recommend --json: %v", err)
	}
	var resp struct {
		Reference struct {
			ID string `json:"id"`
		} `json:"reference"`
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if resp.Reference.ID != "m1" {
		t.Errorf("reference = %q, want m1", resp.Reference.ID)
	}
	if len(resp.Items) == 0 || len(resp.Items) > 2 {
		t.Errorf("got %d items, want 1 or 2", len(resp.Items))
	}
	for _, it := range resp.Items {
		if it.ID == "m1" {
			t.Error("reference must not be recommended")
		}
	}
}

func TestInvalidCatalogFlags(t *testing.T) {
	if _, _, err := runCLI(t, writeCatalog(t), "--format", "xml", "search"); err == nil {
		t.Error("unknown format should fail")
	}

	missing := filepath.Join(t.TempDir(), "missing.csv")
	if _, _, err := runCLI(t, missing, "search"); err == nil {
		t.Error("missing catalog should fail")
	}
}
