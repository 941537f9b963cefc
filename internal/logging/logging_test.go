// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if ValidLevel("nonsense") || !ValidLevel("Error") {
		t.Error("ValidLevel mismatch")
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	l := WithComponent("watcher")
	l.Debug().Str("path", "movies.csv").Msg("polled")

	out := buf.String()
	for _, want := range []string{`"component":"watcher"`, `"path":"movies.csv"`, `"message":"polled"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-1")

	Ctx(ctx).Info().Msg("served")

	if !strings.Contains(buf.String(), `"request_id":"req-1"`) {
		t.Errorf("request id missing: %s", buf.String())
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("empty context returned a request id")
	}
	if a, b := GenerateRequestID(), GenerateRequestID(); a == b || len(a) != 36 {
		t.Errorf("GenerateRequestID() = %q, %q", a, b)
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(NewTestLogger(&buf)).
		With("service", "http").
		WithGroup("supervisor")

	logger.Warn("service restarted",
		"attempt", 3,
		"backoff", 2*time.Second,
		slog.Group("failure", "error", errors.New("boom")),
	)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"service":"http"`,
		`"supervisor.attempt":3`,
		`"supervisor.failure.error":"boom"`,
		`"message":"service restarted"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled on a warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled on a warn logger")
	}
}
