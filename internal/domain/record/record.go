package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is a loosely-typed upstream object as decoded from JSON.
type Record map[string]any

// Aliases lists the keys a logical field may appear under, most preferred first.
type Aliases []string

// Resolve returns the value of the first alias present on rec with a non-nil
// value. A nil record behaves like an empty one.
func Resolve(rec Record, aliases Aliases) any {
	if rec == nil {
		return nil
	}
	for _, key := range aliases {
		value, ok := rec[key]
		if ok && value != nil {
			return value
		}
	}
	return nil
}

// String resolves aliases and renders the value as text; absent values yield "".
func String(rec Record, aliases Aliases) string {
	return Stringify(Resolve(rec, aliases))
}

// Has reports whether any alias carries a non-nil value.
func Has(rec Record, aliases Aliases) bool {
	return Resolve(rec, aliases) != nil
}

// Map resolves aliases to a nested object, nil when absent or not an object.
func Map(rec Record, aliases Aliases) Record {
	return AsRecord(Resolve(rec, aliases))
}

// Slice resolves aliases to an array, nil when absent or not an array.
func Slice(rec Record, aliases Aliases) []any {
	items, _ := Resolve(rec, aliases).([]any)
	return items
}

// AsRecord converts a decoded JSON value into a Record when it is an object.
func AsRecord(value any) Record {
	switch typed := value.(type) {
	case Record:
		return typed
	case map[string]any:
		return Record(typed)
	default:
		return nil
	}
}

// Stringify renders scalar JSON values the way they would be displayed.
func Stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

// Truthy reports whether a decoded JSON value counts as present for display
// purposes: nil, false, zero, NaN and "" do not.
func Truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case float64:
		return typed != 0 && !math.IsNaN(typed)
	case float32:
		return typed != 0 && !math.IsNaN(float64(typed))
	case int:
		return typed != 0
	case int64:
		return typed != 0
	case int32:
		return typed != 0
	case json.Number:
		f, err := typed.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

// FirstNonEmpty returns the first value that is not blank, trimmed.
func FirstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
