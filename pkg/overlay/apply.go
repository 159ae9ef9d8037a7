package overlay

import "github.com/goliatone/go-gridgen/pkg/grid"

// Apply returns a copy of cfg with the store's overrides folded into the
// column specs. The input config is never mutated; given the same config and
// store the output is identical, so determinism of the build step is
// preserved per (Dataset, overlay) pair.
func Apply(cfg grid.GridConfig, store *Store) grid.GridConfig {
	if store.Empty() {
		return cfg
	}

	out := cfg
	out.MasterColumns = applyColumns(cfg.MasterColumns, store.Master)
	out.DetailColumns = applyColumns(cfg.DetailColumns, store.Detail)
	return out
}

func applyColumns(columns []grid.ColumnSpec, lookup func(string) (ColumnOverride, bool)) []grid.ColumnSpec {
	out := make([]grid.ColumnSpec, len(columns))
	copy(out, columns)
	for i := range out {
		override, ok := lookup(out[i].Field)
		if !ok {
			continue
		}
		if override.Label != "" {
			out[i].Label = override.Label
		}
		if override.MinWidth > 0 {
			out[i].MinWidth = override.MinWidth
		}
		if override.Sortable != nil {
			out[i].Sortable = *override.Sortable
		}
	}
	return out
}
