package record

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalize converts the decoded feed tree into a Dataset, one MasterRecord
// per top-level object, preserving source order. The orphan bucket is NOT
// appended here; callers run InjectOrphans exactly once after normalization.
func Normalize(tree []map[string]any) (Dataset, error) {
	dataset := make(Dataset, 0, len(tree))
	for i, obj := range tree {
		master, err := masterFromObject(i, obj)
		if err != nil {
			return nil, err
		}
		dataset = append(dataset, master)
	}
	return dataset, nil
}

func masterFromObject(index int, obj map[string]any) (MasterRecord, error) {
	name, err := stringField(index, obj, "name")
	if err != nil {
		return MasterRecord{}, err
	}
	account, err := stringField(index, obj, "account")
	if err != nil {
		return MasterRecord{}, err
	}
	calls, err := countField(index, obj, "calls")
	if err != nil {
		return MasterRecord{}, err
	}
	minutes, err := countField(index, obj, "minutes")
	if err != nil {
		return MasterRecord{}, err
	}

	rawDetails, ok := obj["callRecords"]
	if !ok {
		return MasterRecord{}, &SchemaError{Index: index, Field: "callRecords"}
	}
	list, ok := rawDetails.([]any)
	if !ok {
		return MasterRecord{}, &SchemaError{Index: index, Field: "callRecords", Err: fmt.Errorf("expected array, got %T", rawDetails)}
	}

	details := make([]DetailRecord, 0, len(list))
	for _, entry := range list {
		child, ok := entry.(map[string]any)
		if !ok {
			return MasterRecord{}, &SchemaError{Index: index, Field: "callRecords", Err: fmt.Errorf("expected object element, got %T", entry)}
		}
		detail, err := detailFromObject(index, child)
		if err != nil {
			return MasterRecord{}, err
		}
		details = append(details, detail)
	}

	return MasterRecord{
		Name:    name,
		Account: account,
		Calls:   calls,
		Minutes: minutes,
		Details: details,
	}, nil
}

func detailFromObject(index int, obj map[string]any) (DetailRecord, error) {
	callID, err := stringField(index, obj, "callId")
	if err != nil {
		return DetailRecord{}, err
	}
	rawDirection, err := stringField(index, obj, "direction")
	if err != nil {
		return DetailRecord{}, err
	}
	direction := Direction(strings.ToLower(strings.TrimSpace(rawDirection)))
	if !direction.Valid() {
		return DetailRecord{}, &SchemaError{Index: index, Field: "direction", Err: fmt.Errorf("unknown direction %q", rawDirection)}
	}
	number, err := stringField(index, obj, "number")
	if err != nil {
		return DetailRecord{}, err
	}
	duration, err := countField(index, obj, "duration")
	if err != nil {
		return DetailRecord{}, err
	}
	switchCode, err := stringField(index, obj, "switchCode")
	if err != nil {
		return DetailRecord{}, err
	}

	return DetailRecord{
		CallID:     callID,
		Direction:  direction,
		Number:     number,
		Duration:   duration,
		SwitchCode: switchCode,
	}, nil
}

func stringField(index int, obj map[string]any, field string) (string, error) {
	raw, ok := obj[field]
	if !ok {
		return "", &SchemaError{Index: index, Field: field}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &SchemaError{Index: index, Field: field, Err: fmt.Errorf("expected string, got %T", raw)}
	}
	return value, nil
}

// countField coerces a non-negative integer out of the source representation.
// JSON numbers arrive as float64; string digits are tolerated because some
// feeds quote their counters.
func countField(index int, obj map[string]any, field string) (int64, error) {
	raw, ok := obj[field]
	if !ok {
		return 0, &SchemaError{Index: index, Field: field}
	}
	value, ok := toInt64(raw)
	if !ok {
		return 0, &SchemaError{Index: index, Field: field, Err: fmt.Errorf("cannot coerce %v (%T) to integer", raw, raw)}
	}
	if value < 0 {
		return 0, &SchemaError{Index: index, Field: field, Err: errors.New("negative value")}
	}
	return value, nil
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == math.Trunc(v) {
			return int64(v), true
		}
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int64(v), true
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseInt(trimmed, 10, 64)
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}
