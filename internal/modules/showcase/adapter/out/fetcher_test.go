package out_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	showcaseoutadapter "folio/internal/modules/showcase/adapter/out"
	apperrors "folio/internal/platform/errors"
)

func TestFetchFileFromSiteRoot(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "data", "events.json"), []byte(`{"events":[]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f := showcaseoutadapter.NewSourceFetcher(root, time.Second)
	for _, loc := range []string{"/data/events.json", "data/events.json"} {
		body, err := f.Fetch(context.Background(), loc)
		if err != nil || string(body) != `{"events":[]}` {
			t.Fatalf("%s: got %q (%v)", loc, body, err)
		}
	}
	if _, err := f.Fetch(context.Background(), "/data/missing.json"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFetchNeverLeavesSiteRoot(t *testing.T) {
	t.Parallel()
	parent := t.TempDir()
	root := filepath.Join(parent, "site")
	if err := os.MkdirAll(filepath.Join(parent, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(parent, "data", "projects.json"), []byte("OUTSIDE"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f := showcaseoutadapter.NewSourceFetcher(root, time.Second)
	for _, loc := range []string{"../data/projects.json", "/../data/projects.json", "data/../../data/projects.json"} {
		body, err := f.Fetch(context.Background(), loc)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("%s: expected not found, got %q (%v)", loc, body, err)
		}
	}
}

func TestFetchHTTP(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/projects.json":
			_, _ = w.Write([]byte(`{"projects":[]}`))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	f := showcaseoutadapter.NewSourceFetcher(t.TempDir(), time.Second)
	body, err := f.Fetch(context.Background(), srv.URL+"/data/projects.json")
	if err != nil || string(body) != `{"projects":[]}` {
		t.Fatalf("got %q (%v)", body, err)
	}
	if _, err := f.Fetch(context.Background(), srv.URL+"/nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("404 should map to not found, got %v", err)
	}
	if _, err := f.Fetch(context.Background(), srv.URL+"/broken"); err == nil {
		t.Fatalf("non-2xx must be an error")
	}
}
