package feed

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches the raw feed document identified by a Source. Implementations
// make a single attempt; failures surface immediately as *FetchError (or a
// plain error for local sources).
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions carries the knobs the built-in loader understands. Zero values
// select sensible defaults: no fs.FS, HTTP enabled with a default client.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS

	// HTTPClient overrides the client used for SourceKindURL loads.
	HTTPClient *http.Client

	// RequestTimeout bounds each HTTP load when the client has no timeout of
	// its own.
	RequestTimeout time.Duration
}
