package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/feedway/feedway-go/internal/types"
)

func TestRetry_RecoversFromServerErrors(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"id":"r1","kind":"like"}`))
	}))
	defer srv.Close()

	c := &Caller{
		HTTP:    srv.Client(),
		BaseURL: srv.URL,
		Retry:   RetryConfig{MaxAttempts: 4, BaseBackoff: time.Millisecond, MaxInterval: 5 * time.Millisecond},
	}
	got, err := GetReaction(context.Background(), c, "r1")
	if err != nil {
		t.Fatalf("GetReaction returned error after retries: %v", err)
	}
	if got.ID != "r1" {
		t.Fatalf("unexpected reaction %+v", got)
	}
	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Fatalf("server saw %d attempts, want 3", n)
	}
}

func TestRetry_StopsOnIrrecoverable(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := &Caller{
		HTTP:    srv.Client(),
		BaseURL: srv.URL,
		Retry:   RetryConfig{MaxAttempts: 5, BaseBackoff: time.Millisecond},
	}
	if _, err := GetReaction(context.Background(), c, "r1"); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("server saw %d attempts, want 1 (no retry on 4xx)", n)
	}
}

func TestRetry_DisabledByDefault(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := GetReaction(context.Background(), newCaller(srv.Client(), srv.URL), "r1"); err == nil {
		t.Fatal("expected error for 500 response")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("server saw %d attempts, want 1 (zero-value policy retries nothing)", n)
	}
}

func TestRetry_NotFoundIsNotRetried(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := &Caller{
		HTTP:    srv.Client(),
		BaseURL: srv.URL,
		Retry:   RetryConfig{MaxAttempts: 5, BaseBackoff: time.Millisecond},
	}
	err := DeleteReaction(context.Background(), c, "ghost")
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("server saw %d attempts, want 1", n)
	}
}

func TestRetry_ContextCancelStopsBackoff(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Caller{
		HTTP:    srv.Client(),
		BaseURL: srv.URL,
		Retry:   RetryConfig{MaxAttempts: 100, BaseBackoff: time.Hour},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := GetReaction(ctx, c, "r1")
	if err == nil {
		t.Fatal("expected error")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("context cancellation did not interrupt backoff wait")
	}
}
