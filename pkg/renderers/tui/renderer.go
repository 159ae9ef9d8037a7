package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-gridgen/pkg/grid"
	"github.com/goliatone/go-gridgen/pkg/record"
	"github.com/goliatone/go-gridgen/pkg/render"
)

// Renderer drives an interactive master-detail session in the terminal: the
// user multi-selects master rows, each selected master expands into a
// multi-select over its call records, and the combined Selection is emitted
// as JSON. This is the rendering collaborator that produces the selection
// result the caller surfaces verbatim.
type Renderer struct {
	driver        PromptDriver
	pageSize      int
	confirmExpand bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:        driver,
		confirmExpand: true,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver, err = newSurveyDriver()
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render prompts through the grid and returns the encoded Selection.
func (r *Renderer) Render(ctx context.Context, config grid.GridConfig, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	title := options.Title
	if title == "" {
		title = "Master-Detail Grid"
	}
	if err := r.driver.Info(ctx, title); err != nil {
		return nil, err
	}

	masterIdx, err := r.promptMasters(ctx, config, options)
	if err != nil {
		return nil, err
	}

	selection := render.Selection{}
	for _, idx := range masterIdx {
		master := config.Rows[idx]
		selection.Rows = append(selection.Rows, master.Name)

		calls, err := r.promptDetails(ctx, config, master)
		if err != nil {
			return nil, err
		}
		selection.Calls = append(selection.Calls, calls...)
	}

	payload, err := selection.Encode()
	if err != nil {
		return nil, fmt.Errorf("tui: encode selection: %w", err)
	}
	return payload, nil
}

func (r *Renderer) promptMasters(ctx context.Context, config grid.GridConfig, options render.RenderOptions) ([]int, error) {
	labels := make([]string, 0, len(config.Rows))
	for _, master := range config.Rows {
		labels = append(labels, masterLabel(config, master))
	}

	var defaults []int
	for i, master := range config.Rows {
		for _, name := range options.Preselected {
			if master.Name == name {
				defaults = append(defaults, i)
				break
			}
		}
	}

	return r.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Select master rows",
		Options:  labels,
		Defaults: defaults,
		Help:     "Expanded rows prompt for their call records next",
		PageSize: r.pageSize,
	})
}

func (r *Renderer) promptDetails(ctx context.Context, config grid.GridConfig, master record.MasterRecord) ([]string, error) {
	details := master.Details
	if config.DetailAccessor != nil {
		details = config.DetailAccessor(master)
	}
	if len(details) == 0 {
		return nil, nil
	}

	if r.confirmExpand {
		expand, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Expand %q (%d call records)?", master.Name, len(details)),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !expand {
			return nil, nil
		}
	}

	labels := make([]string, 0, len(details))
	for _, detail := range details {
		labels = append(labels, detailLabel(config, detail))
	}

	picked, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  fmt.Sprintf("Select call records for %q", master.Name),
		Options:  labels,
		PageSize: r.pageSize,
	})
	if err != nil {
		return nil, err
	}

	calls := make([]string, 0, len(picked))
	for _, idx := range picked {
		calls = append(calls, details[idx].CallID)
	}
	return calls, nil
}

func masterLabel(config grid.GridConfig, master record.MasterRecord) string {
	minutes := fmt.Sprintf("%d", master.Minutes)
	for _, col := range config.MasterColumns {
		if col.Field == "minutes" {
			minutes = col.Display(master.Minutes)
			break
		}
	}
	return fmt.Sprintf("%s [%s] (%d calls, %s)", master.Name, master.Account, master.Calls, minutes)
}

func detailLabel(config grid.GridConfig, detail record.DetailRecord) string {
	duration := fmt.Sprintf("%d", detail.Duration)
	for _, col := range config.DetailColumns {
		if col.Field == "duration" {
			duration = col.Display(detail.Duration)
			break
		}
	}
	return fmt.Sprintf("%s %s %s (%s)", detail.CallID, detail.Direction, detail.Number, duration)
}
