package render

import (
	"context"
	"reflect"
	"testing"

	"github.com/goliatone/go-gridgen/pkg/grid"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, grid.GridConfig, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for empty renderer name")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"tui", "html", "aggrid"} {
		if err := registry.Register(stubRenderer{name: name}); err != nil {
			t.Fatalf("Register(%q) returned error: %v", name, err)
		}
	}

	want := []string{"aggrid", "html", "tui"}
	if got := registry.List(); !reflect.DeepEqual(want, got) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRegistry_Has(t *testing.T) {
	registry := NewRegistry()
	if registry.Has("html") {
		t.Fatal("empty registry should not have html")
	}
	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !registry.Has("html") {
		t.Fatal("expected registry to have html")
	}
}

func TestSelection_EncodeDecodeRoundTrip(t *testing.T) {
	selection := Selection{
		Rows:  []string{"Nora Thomas"},
		Calls: []string{"c-1", "c-2"},
	}

	payload, err := selection.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	decoded, err := DecodeSelection(payload)
	if err != nil {
		t.Fatalf("DecodeSelection returned error: %v", err)
	}
	if !reflect.DeepEqual(selection, decoded) {
		t.Fatalf("round trip mismatch: %+v vs %+v", selection, decoded)
	}
}

func TestSelection_Empty(t *testing.T) {
	if !(Selection{}).Empty() {
		t.Fatal("zero selection should be empty")
	}
	if (Selection{Rows: []string{"x"}}).Empty() {
		t.Fatal("selection with rows should not be empty")
	}
}
