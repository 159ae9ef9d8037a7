package grid

// ColumnSpec is a data-only description of a single grid column. Formatters
// are referenced by name and resolved through the fixed formatter registry so
// the column description stays serializable and deterministic.
type ColumnSpec struct {
	Field     string `json:"field"`
	Label     string `json:"label,omitempty"`
	Formatter string `json:"formatter,omitempty"`
	Checkbox  bool   `json:"checkbox,omitempty"`
	GroupCell bool   `json:"groupCell,omitempty"`
	Sortable  bool   `json:"sortable,omitempty"`
	MinWidth  int    `json:"minWidth,omitempty"`
}

// Display runs the column's formatter against a value, falling back to the
// raw representation when no formatter is configured.
func (c ColumnSpec) Display(value any) string {
	return Format(c.Formatter, value)
}
