package html

import (
	"github.com/goliatone/go-gridgen/pkg/grid"
	"github.com/goliatone/go-gridgen/pkg/record"
	"github.com/goliatone/go-gridgen/pkg/render"
)

// The view structs are the plain, JSON-shaped data the template executes
// against. Cells are pre-formatted here so templates stay free of formatting
// logic.
type columnView struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
	MinWidth int    `json:"minWidth"`
}

type rowView struct {
	Name     string     `json:"name"`
	Selected bool       `json:"selected"`
	Cells    []string   `json:"cells"`
	Details  [][]string `json:"details"`
}

type gridView struct {
	Title         string       `json:"title"`
	MasterColumns []columnView `json:"masterColumns"`
	DetailColumns []columnView `json:"detailColumns"`
	Rows          []rowView    `json:"rows"`
}

func buildView(config grid.GridConfig, options render.RenderOptions) gridView {
	title := options.Title
	if title == "" {
		title = defaultTitle
	}

	preselected := make(map[string]struct{}, len(options.Preselected))
	for _, name := range options.Preselected {
		preselected[name] = struct{}{}
	}

	view := gridView{
		Title:         title,
		MasterColumns: columnViews(config.MasterColumns),
		DetailColumns: columnViews(config.DetailColumns),
		Rows:          make([]rowView, 0, len(config.Rows)),
	}

	for _, master := range config.Rows {
		row := rowView{
			Name:  master.Name,
			Cells: make([]string, 0, len(config.MasterColumns)),
		}
		_, row.Selected = preselected[master.Name]

		for _, col := range config.MasterColumns {
			row.Cells = append(row.Cells, col.Display(masterValue(master, col.Field)))
		}

		for _, detail := range detailRows(config, master) {
			cells := make([]string, 0, len(config.DetailColumns))
			for _, col := range config.DetailColumns {
				cells = append(cells, col.Display(detailValue(detail, col.Field)))
			}
			row.Details = append(row.Details, cells)
		}

		view.Rows = append(view.Rows, row)
	}

	return view
}

func detailRows(config grid.GridConfig, master record.MasterRecord) []record.DetailRecord {
	if config.DetailAccessor == nil {
		return master.Details
	}
	return config.DetailAccessor(master)
}

func columnViews(specs []grid.ColumnSpec) []columnView {
	out := make([]columnView, 0, len(specs))
	for _, spec := range specs {
		label := spec.Label
		if label == "" {
			label = spec.Field
		}
		out = append(out, columnView{
			Field:    spec.Field,
			Label:    label,
			Sortable: spec.Sortable,
			MinWidth: spec.MinWidth,
		})
	}
	return out
}

func masterValue(master record.MasterRecord, field string) any {
	switch field {
	case "name":
		return master.Name
	case "account":
		return master.Account
	case "calls":
		return master.Calls
	case "minutes":
		return master.Minutes
	default:
		return ""
	}
}

func detailValue(detail record.DetailRecord, field string) any {
	switch field {
	case "callId":
		return detail.CallID
	case "direction":
		return string(detail.Direction)
	case "number":
		return detail.Number
	case "duration":
		return detail.Duration
	case "switchCode":
		return detail.SwitchCode
	default:
		return ""
	}
}
