package service

import (
	"bytes"
	"encoding/json"
	"strings"
)

// jsonText flattens a raw JSON value into the text representation the store
// persists. A JSON string passes through as its inner text, any other value
// is compacted, and an absent/null value becomes the given fallback.
func jsonText(raw json.RawMessage, fallback string) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return fallback
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return fallback
	}
	return buf.String()
}
