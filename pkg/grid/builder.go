package grid

import (
	"encoding/json"

	"github.com/goliatone/go-gridgen/pkg/record"
)

// DetailAccessor supplies the detail rows for an expanded master. The built-in
// accessor returns the master's Details verbatim; rendering collaborators call
// it lazily, once per expansion.
type DetailAccessor func(master record.MasterRecord) []record.DetailRecord

// GridConfig is the declarative description a rendering collaborator consumes:
// column specs for masters and details, the full row payload (orphan bucket
// included), and the accessor used to resolve a master's detail rows.
type GridConfig struct {
	MasterColumns  []ColumnSpec   `json:"masterColumns"`
	DetailColumns  []ColumnSpec   `json:"detailColumns"`
	Rows           record.Dataset `json:"rows"`
	DetailAccessor DetailAccessor `json:"-"`
}

// BuildConfig maps a Dataset to its GridConfig. The column and formatter
// constants below are fixed configuration, not computed; the function is pure
// and deterministic, with no failure modes on a well-formed Dataset.
func BuildConfig(dataset record.Dataset) GridConfig {
	return GridConfig{
		MasterColumns: masterColumns(),
		DetailColumns: detailColumns(),
		Rows:          dataset,
		DetailAccessor: func(master record.MasterRecord) []record.DetailRecord {
			return master.Details
		},
	}
}

func masterColumns() []ColumnSpec {
	return []ColumnSpec{
		{Field: "name", GroupCell: true, Checkbox: true},
		{Field: "account"},
		{Field: "calls"},
		{Field: "minutes", Formatter: FormatterMinutes},
	}
}

func detailColumns() []ColumnSpec {
	return []ColumnSpec{
		{Field: "callId", Checkbox: true, Sortable: true},
		{Field: "direction", Sortable: true},
		{Field: "number", MinWidth: 150, Sortable: true},
		{Field: "duration", Formatter: FormatterSeconds, Sortable: true},
		{Field: "switchCode", MinWidth: 150, Sortable: true},
	}
}

// MarshalJSON keeps the serialized form stable: the accessor is a function
// value and is deliberately excluded from the payload.
func (g GridConfig) MarshalJSON() ([]byte, error) {
	type plain struct {
		MasterColumns []ColumnSpec   `json:"masterColumns"`
		DetailColumns []ColumnSpec   `json:"detailColumns"`
		Rows          record.Dataset `json:"rows"`
	}
	return json.Marshal(plain{
		MasterColumns: g.MasterColumns,
		DetailColumns: g.DetailColumns,
		Rows:          g.Rows,
	})
}
