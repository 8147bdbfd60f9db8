package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jotter/internal/notes"
	"jotter/internal/tui/theme"
)

// StyledNoteLine renders a note as one list row cut to width:
// Title (Category) #tag #tag  2024-06-01 09:30
func StyledNoteLine(n notes.Note, width int) string {
	parts := []string{n.Title}
	if n.Category != "" {
		parts = append(parts, theme.Category.Render("("+n.Category+")"))
	}
	for _, tag := range n.Tags {
		parts = append(parts, theme.Tag.Render("#"+tag))
	}
	parts = append(parts, theme.Date.Render(" "+notes.FormatDate(n.Date)))

	line := strings.Join(parts, " ")
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
