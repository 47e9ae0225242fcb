// Package value provides primitives for extracting values from decoded
// registry JSON (map[string]any documents).
//
// These helpers solve common problems:
//   - Type coercion (json.Number / float64 → string)
//   - Null/missing/empty handling
//   - Single-object vs array-of-objects normalization
//   - Unicode space cleanup (non-breaking spaces in name fields)
package value

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Text extracts a string from various JSON representations.
// Handles: string, []byte, json.Number, numeric types, bool, nil.
func Text(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case json.Number:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TextOr extracts a string with a default for empty/nil values.
func TextOr(v any, defaultVal string) string {
	s := Text(v)
	if s == "" {
		return defaultVal
	}
	return s
}

// Int extracts an integer from string or numeric representations.
func Int(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case json.Number:
		n, _ := val.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(val)
		return n
	default:
		return 0
	}
}

// First returns the first element of a JSON array, or nil.
// A non-array value is returned as-is, so callers can treat
// single-valued and array-valued fields uniformly.
func First(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	if len(arr) == 0 {
		return nil
	}
	return arr[0]
}

// FirstText returns the first element of a JSON array as a string.
func FirstText(v any) string {
	return Text(First(v))
}

// Map extracts a JSON object. Returns nil for any other shape.
func Map(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// Maps normalizes a field to a list of JSON objects.
// Handles both an array of objects and a bare single object.
// Non-object array elements are skipped.
func Maps(v any) []map[string]any {
	switch val := v.(type) {
	case []any:
		var result []map[string]any
		for _, item := range val {
			if m, ok := item.(map[string]any); ok {
				result = append(result, m)
			}
		}
		return result
	case map[string]any:
		return []map[string]any{val}
	default:
		return nil
	}
}

// Strings normalizes a field to a list of strings.
// Array elements that are not strings are coerced with Text;
// empty results are dropped.
func Strings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		if s := Text(v); s != "" {
			return []string{s}
		}
		return nil
	}
	var result []string
	for _, item := range arr {
		if s := Text(item); s != "" {
			result = append(result, s)
		}
	}
	return result
}

// spaceCleaner maps unicode space separators (non-breaking space and
// friends) to a plain ASCII space. Citation registries routinely carry
// U+00A0 inside name fields.
var spaceCleaner = runes.Map(func(r rune) rune {
	if unicode.Is(unicode.Zs, r) {
		return ' '
	}
	return r
})

// CleanSpaces replaces unicode space separators with plain spaces.
func CleanSpaces(s string) string {
	out, _, err := transform.String(spaceCleaner, s)
	if err != nil {
		return s
	}
	return out
}

// CleanText extracts a string and normalizes its spaces.
func CleanText(v any) string {
	return CleanSpaces(Text(v))
}
