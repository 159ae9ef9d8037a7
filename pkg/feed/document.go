package feed

import (
	"encoding/json"
	"errors"
)

// Document wraps the raw feed payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("feed: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("feed: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Records decodes the payload as a JSON array of objects, the only shape the
// master feed is allowed to take. A body that is not valid JSON, or whose top
// level is not an array of objects, yields a *DecodeError.
func (d Document) Records() ([]map[string]any, error) {
	if len(d.raw) == 0 {
		return nil, &DecodeError{Location: d.Location(), Err: errors.New("document is empty")}
	}

	var tree []json.RawMessage
	if err := json.Unmarshal(d.raw, &tree); err != nil {
		return nil, &DecodeError{Location: d.Location(), Err: err}
	}

	records := make([]map[string]any, 0, len(tree))
	for _, raw := range tree {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, &DecodeError{Location: d.Location(), Err: err}
		}
		records = append(records, obj)
	}
	return records, nil
}
