package tui

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithPageSize bounds how many rows a select prompt shows at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}

// WithExpandConfirm controls whether the renderer asks before expanding each
// selected master into its detail prompt. Enabled by default.
func WithExpandConfirm(enabled bool) Option {
	return func(r *Renderer) {
		r.confirmExpand = enabled
	}
}
