package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	pkgfeed "github.com/goliatone/go-gridgen/pkg/feed"
)

func TestLoad_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`[{"name": "Nora Thomas"}]`))
	}))
	defer server.Close()

	l := New(pkgfeed.LoaderOptions{})

	doc, err := l.Load(context.Background(), pkgfeed.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if doc.Location() != server.URL {
		t.Fatalf("unexpected location %q", doc.Location())
	}
	if string(doc.Raw()) != `[{"name": "Nora Thomas"}]` {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoad_HTTPNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	l := New(pkgfeed.LoaderOptions{})

	_, err := l.Load(context.Background(), pkgfeed.SourceFromURL(server.URL))
	var fetchErr *pkgfeed.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if fetchErr.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", fetchErr.Status)
	}
	if fetchErr.URL != server.URL {
		t.Fatalf("expected URL %q, got %q", server.URL, fetchErr.URL)
	}
}

func TestLoad_HTTPTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	l := New(pkgfeed.LoaderOptions{})

	_, err := l.Load(context.Background(), pkgfeed.SourceFromURL(server.URL))
	var fetchErr *pkgfeed.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if fetchErr.Status != 0 {
		t.Fatalf("expected zero status for transport failure, got %d", fetchErr.Status)
	}
}

func TestLoad_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"feed.json": &fstest.MapFile{Data: []byte(`[]`)},
	}

	l := New(pkgfeed.LoaderOptions{FileSystem: fsys})

	doc, err := l.Load(context.Background(), pkgfeed.SourceFromFS("feed.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(doc.Raw()) != `[]` {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoad_FSWithoutFilesystem(t *testing.T) {
	l := New(pkgfeed.LoaderOptions{})

	if _, err := l.Load(context.Background(), pkgfeed.SourceFromFS("feed.json")); err == nil {
		t.Fatal("expected error when fs is not configured")
	}
}

func TestLoad_NilSource(t *testing.T) {
	l := New(pkgfeed.LoaderOptions{})

	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoad_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := fstest.MapFS{
		"feed.json": &fstest.MapFile{Data: []byte(`[]`)},
	}
	l := New(pkgfeed.LoaderOptions{FileSystem: fsys})

	if _, err := l.Load(ctx, pkgfeed.SourceFromFS("feed.json")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
