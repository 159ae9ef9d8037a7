package gridgen

import (
	"context"

	"github.com/goliatone/go-gridgen/pkg/feed"
	"github.com/goliatone/go-gridgen/pkg/grid"
	"github.com/goliatone/go-gridgen/pkg/orchestrator"
	"github.com/goliatone/go-gridgen/pkg/render"
)

// GridConfig is the declarative grid description handed to rendering
// collaborators; aliased at the root for convenience.
type GridConfig = grid.GridConfig

// ColumnSpec describes a single column of either grid level.
type ColumnSpec = grid.ColumnSpec

// RenderOptions carries per-request rendering instructions.
type RenderOptions = render.RenderOptions

// Selection is the result an interactive renderer hands back.
type Selection = render.Selection

// SourceFromURL builds a feed source for an HTTP(S) endpoint. It panics on a
// malformed URL to surface configuration mistakes early.
func SourceFromURL(raw string) feed.Source {
	return feed.SourceFromURL(raw)
}

// SourceFromFile builds a feed source for an on-disk document.
func SourceFromFile(path string) feed.Source {
	return feed.SourceFromFile(path)
}

// SourceFromFS builds a feed source resolved against the orchestrator's
// configured fs.FS.
func SourceFromFS(name string) feed.Source {
	return feed.SourceFromFS(name)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// BuildGrid loads the feed, runs the normalization pipeline (orphan bucket
// included), and returns the grid configuration. It is the simplest entry
// point for callers that consume the GridConfig directly.
func BuildGrid(ctx context.Context, source feed.Source, options ...orchestrator.Option) (GridConfig, error) {
	gen := orchestrator.New(options...)
	return gen.Grid(ctx, source)
}

// RenderGrid loads the feed and renders the grid with the named renderer,
// returning the rendered bytes.
func RenderGrid(ctx context.Context, source feed.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Render(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}
