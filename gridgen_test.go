package gridgen

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-gridgen/pkg/orchestrator"
	"github.com/goliatone/go-gridgen/pkg/record"
)

var feedFS = fstest.MapFS{
	"feed.json": &fstest.MapFile{Data: []byte(`[
		{"name": "Nora Thomas", "account": "177000", "calls": 24, "minutes": 1234, "callRecords": [
			{"callId": "c-1", "direction": "outbound", "number": "5550100", "duration": 5000, "switchCode": "SW5"}
		]}
	]`)},
}

func TestBuildGrid(t *testing.T) {
	cfg, err := BuildGrid(
		context.Background(),
		SourceFromFS("feed.json"),
		orchestrator.WithFeedFS(feedFS),
	)
	if err != nil {
		t.Fatalf("BuildGrid returned error: %v", err)
	}

	if len(cfg.Rows) != 2 {
		t.Fatalf("expected master + orphan bucket, got %d rows", len(cfg.Rows))
	}
	if cfg.Rows[len(cfg.Rows)-1].Name != record.OrphanBucketName {
		t.Fatal("expected orphan bucket as last row")
	}
}

func TestRenderGrid_HTML(t *testing.T) {
	out, err := RenderGrid(
		context.Background(),
		SourceFromFS("feed.json"),
		"html",
		orchestrator.WithFeedFS(feedFS),
	)
	if err != nil {
		t.Fatalf("RenderGrid returned error: %v", err)
	}

	page := string(out)
	for _, want := range []string{"Nora Thomas", "1,234m", "5,000s", record.OrphanBucketName} {
		if !strings.Contains(page, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}
}
