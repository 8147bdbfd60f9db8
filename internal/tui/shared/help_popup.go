package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jotter/internal/tui/theme"
)

// HelpBind is a single key and what it does
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection groups related binds under a title
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpSectionStyle = theme.Title
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Width(14)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = theme.ModalBox
)

// RenderHelpPopup renders the sections in a box centered in width x height.
func RenderHelpPopup(title string, sections []HelpSection, width, height int) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(helpSectionStyle.Render(title))
		b.WriteString("\n\n")
	}
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(section.Title))
		b.WriteString("\n")
		for _, bind := range section.Binds {
			b.WriteString("  " + helpKeyStyle.Render(bind.Key) + helpDescStyle.Render(bind.Desc) + "\n")
		}
	}
	b.WriteString("\n" + theme.Muted.Render("Press any key to close"))

	box := helpBoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
