package parser

import "strings"

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '?' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCommand reports whether line should be treated as a command.
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Prefix)
}
