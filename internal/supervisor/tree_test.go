// Cinereco - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinereco

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinereco/internal/logging"
)

// flakyService fails its first fails runs, then blocks until canceled.
type flakyService struct {
	name   string
	fails  int32
	starts atomic.Int32
	up     chan struct{}
}

func newFlakyService(name string, fails int32) *flakyService {
	return &flakyService{name: name, fails: fails, up: make(chan struct{}, 1)}
}

func (s *flakyService) Serve(ctx context.Context) error {
	if n := s.starts.Add(1); n <= s.fails {
		return errors.New("simulated failure")
	}
	select {
	case s.up <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *flakyService) String() string { return s.name }

func testTree(t *testing.T) *SupervisorTree {
	t.Helper()
	tree, err := NewSupervisorTree(logging.NewSlogLogger(zerolog.Nop()), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	return tree
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree, err := NewSupervisorTree(logging.NewSlogLogger(zerolog.Nop()), TreeConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tree.Config(), DefaultTreeConfig(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
	if tree.Root() == nil {
		t.Error("Root() = nil")
	}
}

func TestSupervisorTree_RunsBothLayers(t *testing.T) {
	tree := testTree(t)
	data := newFlakyService("watcher", 0)
	api := newFlakyService("http", 0)
	tree.AddDataService(data)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	for _, s := range []*flakyService{data, api} {
		select {
		case <-s.up:
		case <-time.After(2 * time.Second):
			t.Fatalf("%s not started", s.name)
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree stopped with %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not shut down")
	}
	if report, err := tree.UnstoppedServiceReport(); err != nil || len(report) != 0 {
		t.Errorf("unstopped services %v, err %v", report, err)
	}
}

func TestSupervisorTree_RestartsFailedService(t *testing.T) {
	tree := testTree(t)
	svc := newFlakyService("rebuilder", 2)
	api := newFlakyService("http", 0)
	tree.AddDataService(svc)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	for _, s := range []*flakyService{svc, api} {
		select {
		case <-s.up:
		case <-time.After(3 * time.Second):
			t.Fatalf("%s not running", s.name)
		}
	}
	if got := svc.starts.Load(); got != 3 {
		t.Errorf("starts = %d, want 3", got)
	}
	if got := api.starts.Load(); got != 1 {
		t.Errorf("api layer restarted %d times by a data layer failure", got-1)
	}

	cancel()
	<-errCh
}
