package overlay

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

var labelPolicy = bluemonday.StrictPolicy()

// LoadFS walks the provided filesystem and parses JSON/YAML overlay files.
// When fsys is nil or no overlay files are present, the returned store is
// empty. A field configured by more than one file is an error; overlays are
// meant to be authored once, not layered.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{
		masters: make(map[string]ColumnOverride),
		details: make(map[string]ColumnOverride),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("overlay: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		if err := mergeColumns(store.masters, doc.MasterColumns, path); err != nil {
			return err
		}
		if err := mergeColumns(store.details, doc.DetailColumns, path); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	MasterColumns map[string]ColumnOverride `json:"masterColumns" yaml:"masterColumns"`
	DetailColumns map[string]ColumnOverride `json:"detailColumns" yaml:"detailColumns"`
}

func parseDocument(data []byte, path string) (documentFile, error) {
	var doc documentFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("overlay: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("overlay: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

func mergeColumns(dest map[string]ColumnOverride, src map[string]ColumnOverride, path string) error {
	for field, override := range src {
		name := strings.TrimSpace(field)
		if name == "" {
			return fmt.Errorf("overlay: file %s configures an empty field name", path)
		}
		if _, exists := dest[name]; exists {
			return fmt.Errorf("overlay: duplicate override for field %q (file %s)", name, path)
		}
		override.Label = sanitizeLabel(override.Label)
		if override.MinWidth < 0 {
			return fmt.Errorf("overlay: field %q has negative minWidth (file %s)", name, path)
		}
		dest[name] = override
	}
	return nil
}

// sanitizeLabel strips any markup from overlay-provided labels; overlays are
// data files, never a channel for injecting HTML into renderers.
func sanitizeLabel(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(labelPolicy.Sanitize(trimmed))
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
