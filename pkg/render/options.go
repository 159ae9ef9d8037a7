package render

// RenderOptions carries per-request instructions renderers can surface:
// a page/document title and master rows that should start out selected.
type RenderOptions struct {
	// Title heads the rendered output. Renderers fall back to a default when
	// empty.
	Title string

	// Preselected names master rows the renderer should mark as selected
	// before any interaction happens.
	Preselected []string
}
