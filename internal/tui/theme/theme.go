package theme

import "github.com/charmbracelet/lipgloss"

// Palette sticks to ANSI 0-15 plus one 256-color surface so the app follows
// the terminal's own colors.
var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary       = lipgloss.Color("4")   // blue
	Secondary     = lipgloss.Color("6")   // cyan
	Accent        = lipgloss.Color("5")   // magenta
	Success       = lipgloss.Color("2")   // green
	Warning       = lipgloss.Color("3")   // yellow
	Danger        = lipgloss.Color("1")   // red
	Surface       = lipgloss.Color("236") // dark bg
	Border        = lipgloss.Color("8")
	BorderFocused = lipgloss.Color("4")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Bold  = lipgloss.NewStyle().Bold(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Cursor   = lipgloss.NewStyle().Bold(true).Foreground(Success)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	Category = lipgloss.NewStyle().Foreground(Secondary)
	Tag      = lipgloss.NewStyle().Foreground(Accent)
	Date     = lipgloss.NewStyle().Foreground(TextMuted)
	Chip     = lipgloss.NewStyle().Foreground(Warning)
)

var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	ModalHelp = lipgloss.NewStyle().Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border)
	PaneFocused = Pane.BorderForeground(BorderFocused)

	TabActive   = lipgloss.NewStyle().Bold(true).Foreground(Primary).Underline(true)
	TabInactive = lipgloss.NewStyle().Foreground(TextMuted)
)
