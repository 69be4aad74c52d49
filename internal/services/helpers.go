package services

import "strings"

// splitLines breaks a free-text block into trimmed, non-empty lines.
// Always returns a non-nil slice.
func splitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// dedupe keeps the first occurrence of each value, preserving order.
func dedupe(values []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
