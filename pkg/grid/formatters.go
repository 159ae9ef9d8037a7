package grid

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatterFunc renders a cell value as its display string. Formatters are
// pure: same value in, same string out.
type FormatterFunc func(value any) string

// Named formatters referenced by ColumnSpec. The set is fixed at compile time;
// it is intentionally not extensible at runtime so BuildConfig output stays
// deterministic.
const (
	FormatterMinutes = "minutes"
	FormatterSeconds = "seconds"
)

var formatters = map[string]FormatterFunc{
	FormatterMinutes: suffixed("m"),
	FormatterSeconds: suffixed("s"),
}

// Format applies the named formatter to value. Unknown names and values that
// are not integers fall back to the plain string form of the value.
func Format(name string, value any) string {
	if fn, ok := formatters[name]; ok {
		return fn(value)
	}
	return plain(value)
}

// suffixed builds a formatter that thousands-separates an integer value and
// appends the unit suffix, e.g. 1234 -> "1,234m".
func suffixed(unit string) FormatterFunc {
	return func(value any) string {
		n, ok := asInt64(value)
		if !ok {
			return plain(value)
		}
		return humanize.Comma(n) + unit
	}
}

func plain(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}
