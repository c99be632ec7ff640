package discovery

import "errors"

var errNoJSONArray = errors.New("no JSON array found in response")

// extractJSONArray returns the first balanced top-level JSON array inside raw.
// Generative models like to wrap their JSON in prose or markdown fences; this
// scan skips everything until the first '[' and tracks bracket depth while
// staying string- and escape-aware.
func extractJSONArray(raw string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		ch := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '[':
			if start < 0 {
				start = i
			}
			depth++
		case ']':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", errNoJSONArray
}
