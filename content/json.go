package content

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractJSON pulls the first valid JSON object out of a model completion.
// Models frequently wrap JSON in markdown fences or surround it with prose, so
// plain json.Unmarshal on the raw completion is too brittle.
func ExtractJSON(s string) (string, bool) {
	s = strings.TrimSpace(s)

	// Strip markdown code fences if present.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.Index(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if gjson.Valid(s) && gjson.Parse(s).IsObject() {
		return s, true
	}

	// Fall back to scanning for the outermost object.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	candidate := s[start : end+1]
	if gjson.Valid(candidate) && gjson.Parse(candidate).IsObject() {
		return candidate, true
	}
	return "", false
}

// StringSlice converts a gjson array result into []string, skipping
// non-string elements.
func StringSlice(result gjson.Result) []string {
	if !result.IsArray() {
		return nil
	}
	var out []string
	for _, item := range result.Array() {
		if item.Type == gjson.String {
			out = append(out, item.String())
		}
	}
	return out
}
