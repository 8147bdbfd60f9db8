package shared

import "strings"

// FitHeight pads or cuts content to exactly height lines.
func FitHeight(content string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := splitLines(content)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
