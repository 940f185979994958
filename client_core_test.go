package feedway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestNew_PanicsOnEmptyArgs(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	mustPanic("empty baseURL", func() { New("", "key") })
	mustPanic("empty apiKey", func() { New("http://localhost:8080", "") })
}

func TestClient_AuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"r1","kind":"like"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key")
	defer func() { _ = c.Close() }()

	if _, err := c.GetReaction(context.Background(), "r1"); err != nil {
		t.Fatalf("GetReaction returned error: %v", err)
	}
	if gotAuth != "Bearer secret-key" {
		t.Fatalf("Authorization = %q, want Bearer secret-key", gotAuth)
	}
}

func TestClient_FilterByActivityAndKind(t *testing.T) {
	var gotPath, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"results":[{"id":"r1","kind":"like","activity_id":"A1"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "key")
	defer func() { _ = c.Close() }()

	page, err := c.FilterReactions(context.Background(), FilterReactionsRequest{ActivityID: "A1", Kind: "like"})
	if err != nil {
		t.Fatalf("FilterReactions returned error: %v", err)
	}
	if gotPath != "/reaction/activity_id/A1/like/" {
		t.Fatalf("path = %q, want /reaction/activity_id/A1/like/", gotPath)
	}
	if gotLimit != "10" {
		t.Fatalf("limit = %q, want 10", gotLimit)
	}
	if len(page.Results) != 1 || page.Results[0].ID != "r1" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"r1","kind":"like"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "key")
	defer func() { _ = c.Close() }()

	if _, err := c.GetReaction(context.Background(), "r1"); err != nil {
		t.Fatalf("GetReaction returned error: %v", err)
	}
	if gotPath != "/reaction/r1/" {
		t.Fatalf("path = %q, want /reaction/r1/", gotPath)
	}
}

func TestClient_CloseIdempotent(t *testing.T) {
	c := New("http://localhost:8080", "key")
	if err := c.Close(); err != nil {
		t.Fatalf("first Close returned error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
}

func TestNewReactionID(t *testing.T) {
	id := NewReactionID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewReactionID() = %q, not a valid UUID: %v", id, err)
	}
	if id == NewReactionID() {
		t.Fatal("NewReactionID() returned the same id twice")
	}
}
