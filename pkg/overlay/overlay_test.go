package overlay

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gridgen/pkg/grid"
	"github.com/goliatone/go-gridgen/pkg/record"
)

func TestLoadFS_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"columns.yaml": &fstest.MapFile{Data: []byte(`
masterColumns:
  minutes:
    label: Minutes used
detailColumns:
  number:
    minWidth: 200
    sortable: false
`)},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}

	override, ok := store.Master("minutes")
	if !ok || override.Label != "Minutes used" {
		t.Fatalf("unexpected master override: %+v ok=%v", override, ok)
	}

	override, ok = store.Detail("number")
	if !ok || override.MinWidth != 200 {
		t.Fatalf("unexpected detail override: %+v ok=%v", override, ok)
	}
	if override.Sortable == nil || *override.Sortable {
		t.Fatalf("expected sortable=false override, got %+v", override.Sortable)
	}
}

func TestLoadFS_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"columns.json": &fstest.MapFile{Data: []byte(`{"masterColumns": {"account": {"label": "Account #"}}}`)},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	override, ok := store.Master("account")
	if !ok || override.Label != "Account #" {
		t.Fatalf("unexpected override: %+v ok=%v", override, ok)
	}
}

func TestLoadFS_SanitizesLabels(t *testing.T) {
	fsys := fstest.MapFS{
		"columns.yaml": &fstest.MapFile{Data: []byte(`
masterColumns:
  name:
    label: "<script>alert(1)</script>Customer"
`)},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	override, _ := store.Master("name")
	if strings.Contains(override.Label, "<") {
		t.Fatalf("label not sanitized: %q", override.Label)
	}
	if !strings.Contains(override.Label, "Customer") {
		t.Fatalf("label text lost: %q", override.Label)
	}
}

func TestLoadFS_DuplicateField(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("masterColumns:\n  name:\n    label: A\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("masterColumns:\n  name:\n    label: B\n")},
	}

	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected duplicate override error")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	if !store.Empty() {
		t.Fatal("expected empty store")
	}
}

func TestApply_Overrides(t *testing.T) {
	cfg := grid.BuildConfig(record.InjectOrphans(nil))

	sortable := false
	store := &Store{
		masters: map[string]ColumnOverride{
			"minutes": {Label: "Minutes used"},
		},
		details: map[string]ColumnOverride{
			"number": {MinWidth: 200, Sortable: &sortable},
		},
	}

	out := Apply(cfg, store)

	var minutes grid.ColumnSpec
	for _, col := range out.MasterColumns {
		if col.Field == "minutes" {
			minutes = col
		}
	}
	if minutes.Label != "Minutes used" {
		t.Fatalf("expected label override, got %+v", minutes)
	}
	// formatter stays intact; overlays only touch presentation hints
	if minutes.Formatter != grid.FormatterMinutes {
		t.Fatalf("formatter clobbered: %+v", minutes)
	}

	var number grid.ColumnSpec
	for _, col := range out.DetailColumns {
		if col.Field == "number" {
			number = col
		}
	}
	if number.MinWidth != 200 || number.Sortable {
		t.Fatalf("expected minWidth/sortable override, got %+v", number)
	}

	// input config untouched
	if diff := cmp.Diff(grid.BuildConfig(record.InjectOrphans(nil)).MasterColumns, cfg.MasterColumns); diff != "" {
		t.Fatalf("input config mutated (-want +got):\n%s", diff)
	}
}

func TestApply_EmptyStoreIsNoop(t *testing.T) {
	cfg := grid.BuildConfig(record.InjectOrphans(nil))

	out := Apply(cfg, &Store{})
	if diff := cmp.Diff(cfg.MasterColumns, out.MasterColumns); diff != "" {
		t.Fatalf("unexpected change (-want +got):\n%s", diff)
	}
}
