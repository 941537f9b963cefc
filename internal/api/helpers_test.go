// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinereco/internal/catalog"
	"github.com/tomtom215/cinereco/internal/events"
	"github.com/tomtom215/cinereco/internal/models"
	"github.com/tomtom215/cinereco/internal/recommend"
)

func testMovies() []catalog.Movie {
	return []catalog.Movie{
		{ID: "m01", Title: "Nova", Year: 2001, Genres: []string{"Animation", "Science Fiction"}, Countries: []string{"France"},
			Summary: "a young robot explores deep space", Cast: "Anna Bell, Marc Roy", Directors: "Jean Luc", Popularity: catalog.TierPopular,
			Duration: 95, Rating: 8.0, HasRating: true, Votes: 20000, Poster1: "/nova.jpg"},
		{ID: "m02", Title: "Nova", Year: 2015, Genres: []string{"Drame"}, Countries: []string{"France"},
			Summary: "a family drama in a small town", Cast: "Paul Roy", Directors: "Claire Denis", Popularity: catalog.TierLessPopular,
			Duration: 110, Rating: 6.0, HasRating: true, Votes: 8000},
		{ID: "m03", Title: "Nova", Year: 2015, Genres: []string{"Animation", "Aventure"}, Countries: []string{"Japon"},
			Summary: "a young robot explores the ocean", Cast: "Anna Bell", Directors: "Hayao Mori", Popularity: catalog.TierVeryPopular,
			Duration: 100, Rating: 7.5, HasRating: true, Votes: 90000},
		{ID: "m04", Title: "Star Robot", Year: 2010, Genres: []string{"Animation", "Science Fiction"}, Countries: []string{"France"},
			Summary: "a young robot explores deep space again", Cast: "Anna Bell, Marc Roy", Directors: "Jean Luc", Popularity: catalog.TierPopular,
			Duration: 98, Rating: 7.0, HasRating: true, Votes: 16000},
		{ID: "m05", Title: "Night Terror", Year: 2012, Genres: []string{"Horreur"}, Countries: []string{"États-Unis"},
			Summary: "a family haunted in a small town", Cast: "Paul Roy, Sam Fox", Directors: "Wes Crane", Popularity: catalog.TierVeryPopular,
			Duration: 92, Rating: 6.5, HasRating: true, Votes: 60000},
		{ID: "m06", Title: "Ocean Life", Year: 2018, Genres: []string{"Documentaire"}, Countries: []string{"France"},
			Summary: "the ocean and its deep creatures", Cast: "Marc Roy", Directors: "Jean Luc", Popularity: catalog.TierLessPopular,
			Duration: 85, Rating: 7.8, HasRating: true, Votes: 9000},
		{ID: "m07", Title: "Small Town", Year: 2016, Genres: []string{"Drame"}, Countries: []string{"France"},
			Summary: "a family drama in a small town again", Cast: "Paul Roy, Sam Fox", Directors: "Claire Denis", Popularity: catalog.TierPopular,
			Duration: 105, Rating: 6.8, HasRating: true, Votes: 17000},
		{ID: "m08", Title: "Space Drift", Year: 1990, Genres: []string{"Animation"}, Countries: []string{"Japon"},
			Summary: "a robot drifts in deep space", Cast: "Sam Fox", Directors: "Hayao Mori", Popularity: catalog.TierLowProfile,
			Duration: 90, Votes: 100},
		{ID: "m09", Title: "Town Secrets", Year: 2019, Genres: []string{"Drame", "Thriller"}, Countries: []string{"États-Unis"},
			Summary: "secrets of a small town family", Cast: "Paul Roy", Directors: "Wes Crane", Popularity: catalog.TierVeryPopular,
			Duration: 120, Rating: 7.2, HasRating: true, Votes: 55000},
		{ID: "m10", Title: "Deep Fear", Year: 2014, Genres: []string{"Horror", "Thriller"}, Countries: []string{"États-Unis"},
			Summary: "fear in the deep ocean", Cast: "Sam Fox", Directors: "Wes Crane", Popularity: catalog.TierPopular,
			Duration: 94, Rating: 5.9, HasRating: true, Votes: 15500},
	}
}

type stubReloads struct{ last events.ReloadStatus }

func (s stubReloads) Last() events.ReloadStatus { return s.last }

type testServer struct {
	engine  *recommend.Engine
	handler http.Handler
}

// newTestServer builds the full router. loaded controls whether the
// catalog is built before the first request.
func newTestServer(t *testing.T, loaded bool, mw *ChiMiddleware) *testServer {
	t.Helper()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if loaded {
		cat, err := catalog.New(testMovies())
		if err != nil {
			t.Fatalf("catalog.New() error = %v", err)
		}
		if _, _, err := engine.Load(context.Background(), cat); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	}
	if mw == nil {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
		mw = NewChiMiddleware(cfg)
	}
	h := NewHandler(engine, stubReloads{}, HandlerConfig{
		CatalogPath:   "/data/movies.csv",
		CatalogFormat: "csv",
		Version:       "test",
	})
	return &testServer{engine: engine, handler: NewRouter(h, mw, 5*time.Second).SetupChi()}
}

func (s *testServer) get(t *testing.T, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: body %q is not an envelope: %v", target, rec.Body.String(), err)
	}
	return rec, env
}

// envelope keeps data raw so each test decodes its own shape.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
	return out
}

func movieIDs(recs []models.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}
