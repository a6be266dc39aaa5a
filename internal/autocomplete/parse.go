package autocomplete

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field aliases accepted in option objects, in priority order.
var (
	completionKeys = []string{"completionText", "description"}
	sqlKeys        = []string{"sqlQuery", "sql_query", "sql"}
)

// DecodeOptions parses a response body. Entries of the options array that
// are not JSON objects are dropped. A missing options array yields no options.
func DecodeOptions(body []byte) ([]Option, error) {
	var envelope struct {
		Options []json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode autocomplete response: %w", err)
	}

	options := make([]Option, 0, len(envelope.Options))
	for _, raw := range envelope.Options {
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			continue
		}
		options = append(options, Option{
			CompletionText: firstString(fields, completionKeys),
			SQLQuery:       firstString(fields, sqlKeys),
		})
	}
	return options, nil
}

// firstString returns the first non-empty string value among keys.
func firstString(fields map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := fields[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// ValidOptions keeps options whose completion text and SQL are both present,
// preserving rank order.
func ValidOptions(options []Option) []Option {
	valid := make([]Option, 0, len(options))
	for _, o := range options {
		if strings.TrimSpace(o.CompletionText) == "" || strings.TrimSpace(o.SQLQuery) == "" {
			continue
		}
		valid = append(valid, o)
	}
	return valid
}

// Completions extracts trimmed, non-empty completion texts, capped at limit.
// A limit <= 0 means no cap.
func Completions(options []Option, limit int) []string {
	var items []string
	for _, o := range options {
		text := strings.TrimSpace(o.CompletionText)
		if text == "" {
			continue
		}
		items = append(items, text)
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items
}
