package ai

import (
	"encoding/json"
	"strings"
)

// stripFences removes a leading/trailing markdown code fence from an AI
// response, including an optional "json" language tag.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	if idx := strings.LastIndex(raw, "```"); idx != -1 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}

// unmarshalArray parses a JSON array that may arrive wrapped in prose or code
// fences. Fallback order: bracket-scan, fence-strip, raw parse. Returns false
// when every strategy fails.
func unmarshalArray(raw string, v any) bool {
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), v); err == nil {
			return true
		}
	}

	if err := json.Unmarshal([]byte(stripFences(raw)), v); err == nil {
		return true
	}

	return json.Unmarshal([]byte(raw), v) == nil
}

// unmarshalObject parses a JSON object with the same tolerance for fence
// wrappers as unmarshalArray.
func unmarshalObject(raw string, v any) bool {
	if err := json.Unmarshal([]byte(stripFences(raw)), v); err == nil {
		return true
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), v); err == nil {
			return true
		}
	}
	return false
}
