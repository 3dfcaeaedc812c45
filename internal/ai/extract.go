package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrNotJSON = errors.New("text is not valid JSON")

// StripFences removes a markdown code fence wrapping model output. It
// handles a leading "```json" or bare "```" fence, a trailing "```" fence,
// and surrounding whitespace. Either fence may be present on its own; text
// without fences is returned trimmed but otherwise untouched.
func StripFences(s string) string {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, "```json"); ok {
		s = strings.TrimSpace(rest)
	} else if rest, ok := strings.CutPrefix(s, "```"); ok {
		s = strings.TrimSpace(rest)
	}

	if rest, ok := strings.CutSuffix(s, "```"); ok {
		s = strings.TrimSpace(rest)
	}

	return s
}

// ExtractJSON strips any markdown fences from raw and parses the remainder
// as JSON. Returns ErrNotJSON when the remaining text does not parse, e.g.
// when the model answered in prose instead of the requested format.
func ExtractJSON(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(StripFences(raw)), &v); err != nil {
		return nil, ErrNotJSON
	}
	return v, nil
}
