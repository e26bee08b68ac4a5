package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractObject recovers a JSON object from raw model output that may be
// wrapped in prose or markdown fences. It tries a direct parse first, then
// the first balanced top-level {...} substring. An error means the output has
// no usable structure, so expansion callers must keep their prior content.
func ExtractObject(raw string, v interface{}) error {
	return extract(raw, v, '{', '}')
}

// ExtractArray is ExtractObject for a top-level JSON array.
func ExtractArray(raw string, v interface{}) error {
	return extract(raw, v, '[', ']')
}

func extract(raw string, v interface{}, open, closing byte) error {
	cleaned := stripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	candidate, ok := balancedSlice(cleaned, open, closing)
	if !ok {
		return fmt.Errorf("no %c...%c found in model output", open, closing)
	}
	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return fmt.Errorf("model output is not valid JSON: %w", err)
	}
	return nil
}

// stripFences removes a surrounding ```json ... ``` block if present.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// balancedSlice returns the first balanced bracket pair of the requested
// kind, respecting JSON string literals and escapes.
func balancedSlice(s string, open, closing byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
