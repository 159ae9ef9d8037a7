package render

import (
	"context"

	"github.com/goliatone/go-gridgen/pkg/grid"
)

// Renderer converts a GridConfig into a byte representation (HTML, a
// serialized Selection, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, config grid.GridConfig, options RenderOptions) ([]byte, error)
}
