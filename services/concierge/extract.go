package concierge

import (
	"encoding/json"
	"strings"
)

// ExtractJSON recovers a single JSON object from free-form model output,
// tolerating leading prose, trailing notes, and markdown code fences. It
// first tries the whole text, then isolates the first balanced {...} block
// with a depth scan. The scan tracks string literals and escapes so braces
// inside values do not confuse it, and it survives stray trailing braces
// that would defeat a greedy match to the last '}'.
func ExtractJSON(text string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &obj); err == nil && obj != nil {
		return obj, nil
	}

	if blob, ok := isolateObject(text); ok {
		if err := json.Unmarshal([]byte(blob), &obj); err == nil && obj != nil {
			return obj, nil
		}
	}

	return nil, &ParseError{Raw: text}
}

// isolateObject finds the first '{' and returns the substring through its
// true matching '}', or false when the text holds no balanced object.
func isolateObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
