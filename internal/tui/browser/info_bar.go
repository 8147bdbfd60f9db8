package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jotter/internal/search"
	"jotter/internal/tui/theme"
)

const (
	ModeNormal  = "Normal"
	ModeSearch  = "Search"
	ModePreview = "Preview"
)

var (
	modeStyle    = theme.Title
	hintStyle    = theme.HelpHint
	chipStyle    = theme.Chip
	searchStyle  = lipgloss.NewStyle().Foreground(theme.Success)
	infoBarStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(theme.Border)
)

// InfoBar shows the mode, the sort and filter chips and the search line
type InfoBar struct {
	Mode    string
	Session *search.Session
	Width   int
}

func NewInfoBar() InfoBar {
	return InfoBar{Mode: ModeNormal, Width: 80}
}

func (b *InfoBar) SetContext(mode string, session *search.Session) {
	b.Mode = mode
	b.Session = session
}

// View renders the info bar (3 fixed lines)
func (b *InfoBar) View() string {
	lines := []string{b.renderModeLine(), b.renderChipsLine(), b.renderSearchLine()}
	return infoBarStyle.Width(b.Width).Render(strings.Join(lines, "\n"))
}

func (b *InfoBar) renderModeLine() string {
	line := modeStyle.Render("[" + b.Mode + "]")
	if b.Session != nil {
		line += "  " + theme.Muted.Render(fmt.Sprintf("%d note(s)", len(b.Session.Results())))
	}
	return line
}

func (b *InfoBar) renderChipsLine() string {
	if b.Session == nil {
		return ""
	}
	opts := b.Session.Options()
	arrow := "↓"
	if opts.SortOrder == search.Asc {
		arrow = "↑"
	}
	parts := []string{theme.Muted.Render("Sort: " + opts.SortBy.Label() + " " + arrow)}
	for _, chip := range b.Session.ActiveFilters() {
		parts = append(parts, chipStyle.Render(chip))
	}
	return strings.Join(parts, "  |  ")
}

func (b *InfoBar) renderSearchLine() string {
	if b.Session == nil || b.Session.Query() == "" || b.Mode == ModeSearch {
		return ""
	}
	return searchStyle.Render("Search: \"" + b.Session.Query() + "\"")
}

// RenderHints returns the styled key hints for the current mode
func (b *InfoBar) RenderHints() string {
	return hintStyle.Render(b.RenderHintsRaw())
}

func (b *InfoBar) RenderHintsRaw() string {
	switch b.Mode {
	case ModeSearch:
		return "type to filter  up/down:navigate  enter:done  esc:clear"
	case ModePreview:
		return "j/k:scroll  g/G:top/bottom  enter/esc:back"
	}
	return "/:search  c:category  d:date  s:sort  o:order  x:clear  enter:preview  n:new  g:tags  e:export  ?:help"
}
