package store

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Fields holds the raw values of a document. Backends hand back whatever
// their codec produced (float64, json.Number, int32, []any ...), so the
// accessors below coerce and fall back to a default instead of failing.
type Fields map[string]any

// String returns a non-empty string value or fallback.
func (f Fields) String(key, fallback string) string {
	if value, ok := f[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

// Bool returns a boolean value or fallback.
func (f Fields) Bool(key string, fallback bool) bool {
	switch value := f[key].(type) {
	case bool:
		return value
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err == nil {
			return parsed
		}
	}
	return fallback
}

// Float returns a numeric value or fallback.
func (f Fields) Float(key string, fallback float64) float64 {
	switch value := f[key].(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case uint:
		return float64(value)
	case uint32:
		return float64(value)
	case uint64:
		return float64(value)
	case json.Number:
		if parsed, err := value.Float64(); err == nil {
			return parsed
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// Strings returns a list of strings. A plain string value is split on newlines.
func (f Fields) Strings(key string) []string {
	switch value := f[key].(type) {
	case []string:
		out := make([]string, len(value))
		copy(out, value)
		return out
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return SplitLines(value)
	}
	return []string{}
}

// SplitLines splits multi-line text, trimming each line and dropping blanks.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
