package record

import "fmt"

// SchemaError reports decoded feed data that is missing a required field or
// whose value cannot be coerced to the expected type. Index is the position of
// the offending element in the top-level array; Field names the key that
// failed.
type SchemaError struct {
	Index int
	Field string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("record: element %d: field %q: %v", e.Index, e.Field, e.Err)
	}
	return fmt.Sprintf("record: element %d: missing field %q", e.Index, e.Field)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
