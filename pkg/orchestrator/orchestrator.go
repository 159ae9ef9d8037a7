package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	internalloader "github.com/goliatone/go-gridgen/internal/feed/loader"
	"github.com/goliatone/go-gridgen/pkg/feed"
	"github.com/goliatone/go-gridgen/pkg/grid"
	"github.com/goliatone/go-gridgen/pkg/overlay"
	"github.com/goliatone/go-gridgen/pkg/record"
	"github.com/goliatone/go-gridgen/pkg/render"
	"github.com/goliatone/go-gridgen/pkg/renderers/html"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom feed loader.
func WithLoader(loader feed.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithFeedFS supplies the fs.FS backing feed.SourceKindFS sources.
func WithFeedFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.feedFS = fsys
	}
}

// WithHTTPTimeout bounds each HTTP fetch made by the built-in loader.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		o.httpTimeout = timeout
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithOverlays registers a pre-loaded column overlay store.
func WithOverlays(store *overlay.Store) Option {
	return func(o *Orchestrator) {
		o.overlays = store
	}
}

// WithOverlayFS loads column overlays from the provided filesystem when the
// orchestrator initialises.
func WithOverlayFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.overlayFS = fsys
	}
}

// Orchestrator coordinates the full pipeline from feed document to rendered
// output: fetch, decode, normalize, orphan injection, grid configuration, and
// rendering. Loaded Datasets are cached per source location with a
// single-flight guarantee, so the pipeline executes at most once per URL no
// matter how many callers ask concurrently.
type Orchestrator struct {
	loader          feed.Loader
	registry        *render.Registry
	defaultRenderer string
	overlays        *overlay.Store
	overlayFS       fs.FS
	feedFS          fs.FS
	httpTimeout     time.Duration
	cache           *datasetCache
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		cache:           newDatasetCache(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a grid from a feed source.
type Request struct {
	// Source identifies where the feed document lives.
	Source feed.Source

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as the title or
	// preselected rows. When omitted, renderers receive the zero value.
	RenderOptions render.RenderOptions
}

// Dataset runs fetch, decode, normalize, and orphan injection for the source,
// memoized per source location: the first call executes the pipeline, every
// later call returns the stored immutable result. Failures are surfaced and
// never cached.
func (o *Orchestrator) Dataset(ctx context.Context, src feed.Source) (record.Dataset, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.ensureReady(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("orchestrator: source is required")
	}

	return o.cache.getOrLoad(src.Location(), func() (record.Dataset, error) {
		return o.loadDataset(ctx, src)
	})
}

// Grid builds the GridConfig for the source's cached Dataset, applying any
// configured column overlays.
func (o *Orchestrator) Grid(ctx context.Context, src feed.Source) (grid.GridConfig, error) {
	dataset, err := o.Dataset(ctx, src)
	if err != nil {
		return grid.GridConfig{}, err
	}

	config := grid.BuildConfig(dataset)
	if !o.overlays.Empty() {
		config = overlay.Apply(config, o.overlays)
	}
	return config, nil
}

// Render executes the full pipeline through the named renderer and returns
// the rendered bytes (HTML for the default renderer, a Selection payload for
// interactive ones).
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	config, err := o.Grid(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, config, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Registry exposes the renderer registry so callers can add collaborators
// (for example the interactive tui renderer) after construction.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) loadDataset(ctx context.Context, src feed.Source) (record.Dataset, error) {
	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load feed: %w", err)
	}

	tree, err := doc.Records()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: decode feed: %w", err)
	}

	dataset, err := record.Normalize(tree)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: normalize feed: %w", err)
	}

	return record.InjectOrphans(dataset), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) ensureReady() error {
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.initialiseErr
}

func (o *Orchestrator) applyDefaults() {
	o.defaultsApplied = true

	if o.cache == nil {
		o.cache = newDatasetCache()
	}

	if o.loader == nil {
		o.loader = internalloader.New(feed.LoaderOptions{
			FileSystem:     o.feedFS,
			RequestTimeout: o.httpTimeout,
		})
	}

	if o.overlays == nil {
		store, err := overlay.LoadFS(o.overlayFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load overlays: %w", err)
			return
		}
		o.overlays = store
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if !o.registry.Has(defaultRendererName) {
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise html renderer: %w", err)
			return
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register html renderer: %w", err)
			return
		}
	}
}
