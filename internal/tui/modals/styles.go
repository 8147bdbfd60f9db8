package modals

import (
	"github.com/charmbracelet/lipgloss"

	"jotter/internal/tui/theme"
)

var (
	boxStyle   = theme.ModalBox.Width(56)
	titleStyle = theme.ModalTitle
	helpStyle  = theme.ModalHelp.PaddingTop(1)

	warningStyle = theme.Warn
	mutedStyle   = theme.Muted

	itemStyle = lipgloss.NewStyle().
			Foreground(theme.Text)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true)

	itemHighlightStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("0")).
				Foreground(theme.Warning)

	createNewStyle = lipgloss.NewStyle().
			Foreground(theme.Success).
			Italic(true)

	chipStyle = lipgloss.NewStyle().
			Foreground(theme.TextBright).
			Background(theme.Surface).
			Padding(0, 1)

	tabActiveStyle   = theme.TabActive
	tabInactiveStyle = theme.TabInactive
)
