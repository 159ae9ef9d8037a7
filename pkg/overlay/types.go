package overlay

// ColumnOverride carries the per-field presentation tweaks an overlay document
// may apply on top of the fixed column constants. Zero values leave the
// corresponding default untouched.
type ColumnOverride struct {
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	MinWidth int    `json:"minWidth,omitempty" yaml:"minWidth,omitempty"`
	Sortable *bool  `json:"sortable,omitempty" yaml:"sortable,omitempty"`
}

// Store holds the merged overrides loaded from an overlay filesystem, keyed
// by column field name per grid level.
type Store struct {
	masters map[string]ColumnOverride
	details map[string]ColumnOverride
}

// Master returns the override for a master column field.
func (s *Store) Master(field string) (ColumnOverride, bool) {
	if s == nil {
		return ColumnOverride{}, false
	}
	o, ok := s.masters[field]
	return o, ok
}

// Detail returns the override for a detail column field.
func (s *Store) Detail(field string) (ColumnOverride, bool) {
	if s == nil {
		return ColumnOverride{}, false
	}
	o, ok := s.details[field]
	return o, ok
}

// Empty reports whether the store holds any overrides.
func (s *Store) Empty() bool {
	return s == nil || (len(s.masters) == 0 && len(s.details) == 0)
}
