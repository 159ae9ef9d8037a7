package orchestrator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gridgen/pkg/feed"
	"github.com/goliatone/go-gridgen/pkg/record"
)

const validFeed = `[
	{"name": "Nora Thomas", "account": "177000", "calls": 24, "minutes": 1234, "callRecords": [
		{"callId": "c-1", "direction": "outbound", "number": "5550100", "duration": 5000, "switchCode": "SW5"}
	]}
]`

type feedServer struct {
	hits    atomic.Int64
	mu      sync.Mutex
	payload string
	status  int
}

func newFeedServer(payload string) (*feedServer, *httptest.Server) {
	fs := &feedServer{payload: payload, status: http.StatusOK}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)
		fs.mu.Lock()
		payload, status := fs.payload, fs.status
		fs.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	return fs, server
}

func (fs *feedServer) set(payload string, status int) {
	fs.mu.Lock()
	fs.payload, fs.status = payload, status
	fs.mu.Unlock()
}

func TestDataset_PipelineAndOrphanBucket(t *testing.T) {
	_, server := newFeedServer(validFeed)
	defer server.Close()

	gen := New()

	dataset, err := gen.Dataset(context.Background(), feed.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("Dataset returned error: %v", err)
	}

	if len(dataset) != 2 {
		t.Fatalf("expected master + orphan bucket, got %d masters", len(dataset))
	}
	if dataset[0].Name != "Nora Thomas" {
		t.Fatalf("unexpected first master %q", dataset[0].Name)
	}
	if dataset[1].Name != record.OrphanBucketName {
		t.Fatalf("expected orphan bucket last, got %q", dataset[1].Name)
	}
}

func TestDataset_SequentialCallsLoadOnce(t *testing.T) {
	fs, server := newFeedServer(validFeed)
	defer server.Close()

	gen := New()
	src := feed.SourceFromURL(server.URL)

	var first record.Dataset
	for i := 0; i < 5; i++ {
		dataset, err := gen.Dataset(context.Background(), src)
		if err != nil {
			t.Fatalf("call %d returned error: %v", i, err)
		}
		if first == nil {
			first = dataset
			continue
		}
		if diff := cmp.Diff(first, dataset); diff != "" {
			t.Fatalf("call %d returned different content (-first +got):\n%s", i, diff)
		}
	}

	if got := fs.hits.Load(); got != 1 {
		t.Fatalf("expected exactly 1 fetch, got %d", got)
	}
	// single orphan bucket: repeated loads never re-inject
	orphans := 0
	for _, master := range first {
		if master.Name == record.OrphanBucketName {
			orphans++
		}
	}
	if orphans != 1 {
		t.Fatalf("expected exactly 1 orphan bucket, got %d", orphans)
	}
}

func TestDataset_ConcurrentCallsSingleFlight(t *testing.T) {
	fs, server := newFeedServer(validFeed)
	defer server.Close()

	gen := New()
	src := feed.SourceFromURL(server.URL)

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = gen.Dataset(context.Background(), src)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d returned error: %v", i, err)
		}
	}
	if got := fs.hits.Load(); got != 1 {
		t.Fatalf("expected exactly 1 fetch under concurrency, got %d", got)
	}
}

func TestDataset_DecodeErrorIsNotCached(t *testing.T) {
	fs, server := newFeedServer(`[{"name": "Nora`)
	defer server.Close()

	gen := New()
	src := feed.SourceFromURL(server.URL)

	_, err := gen.Dataset(context.Background(), src)
	var decodeErr *feed.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if gen.cache.loaded(src.Location()) {
		t.Fatal("failed load must not populate the cache")
	}

	// feed recovers; the retry must fetch again and succeed
	fs.set(validFeed, http.StatusOK)

	dataset, err := gen.Dataset(context.Background(), src)
	if err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	if len(dataset) != 2 {
		t.Fatalf("expected master + orphan bucket after retry, got %d", len(dataset))
	}
	if got := fs.hits.Load(); got != 2 {
		t.Fatalf("expected 2 fetches (failure + retry), got %d", got)
	}
}

func TestDataset_FetchErrorSurfaced(t *testing.T) {
	fs, server := newFeedServer("nope")
	defer server.Close()
	fs.set("nope", http.StatusInternalServerError)

	gen := New()

	_, err := gen.Dataset(context.Background(), feed.SourceFromURL(server.URL))
	var fetchErr *feed.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if fetchErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", fetchErr.Status)
	}
}

func TestDataset_SchemaErrorSurfaced(t *testing.T) {
	_, server := newFeedServer(`[{"name": "Nora Thomas", "account": "177000", "calls": 1, "minutes": 1}]`)
	defer server.Close()

	gen := New()

	_, err := gen.Dataset(context.Background(), feed.SourceFromURL(server.URL))
	var schemaErr *record.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if schemaErr.Field != "callRecords" {
		t.Fatalf("expected error naming callRecords, got %q", schemaErr.Field)
	}
}

func TestGrid_AppliesDefaults(t *testing.T) {
	_, server := newFeedServer(validFeed)
	defer server.Close()

	gen := New()

	cfg, err := gen.Grid(context.Background(), feed.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	if len(cfg.MasterColumns) != 4 || len(cfg.DetailColumns) != 5 {
		t.Fatalf("unexpected column counts %d/%d", len(cfg.MasterColumns), len(cfg.DetailColumns))
	}
	if cfg.DetailAccessor == nil {
		t.Fatal("expected detail accessor")
	}
}

func TestRender_UnknownRenderer(t *testing.T) {
	_, server := newFeedServer(validFeed)
	defer server.Close()

	gen := New()

	_, err := gen.Render(context.Background(), Request{
		Source:   feed.SourceFromURL(server.URL),
		Renderer: "bogus",
	})
	if err == nil {
		t.Fatal("expected unknown renderer error")
	}
}

func TestDataset_RequiresSourceAndContext(t *testing.T) {
	gen := New()

	if _, err := gen.Dataset(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := gen.Dataset(nil, feed.SourceFromFile("feed.json")); err == nil { //nolint:staticcheck
		t.Fatal("expected error for nil context")
	}
}
