package modals

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jotter/internal/export"
	"jotter/internal/notes"
	"jotter/internal/tui/messages"
)

type exportScope struct {
	label string
	notes []notes.Note
}

// ExportModalModel chooses what to export and in which format
type ExportModalModel struct {
	scopes  []exportScope
	scope   int
	formats []export.Info
	format  int
	row     int // 0 scope, 1 format
	warning string
}

// NewExportModal offers the filtered list, every note and, when current is
// not nil, just that note.
func NewExportModal(all, filtered []notes.Note, current *notes.Note) ExportModalModel {
	scopes := []exportScope{
		{label: "Filtered notes", notes: export.Select(filtered, export.ScopeAll, nil)},
		{label: "All notes", notes: export.Select(all, export.ScopeAll, nil)},
	}
	if current != nil {
		only := map[string]bool{current.ID: true}
		scopes = append(scopes, exportScope{
			label: "Current note",
			notes: export.Select(all, export.ScopeSelected, only),
		})
	}
	return ExportModalModel{scopes: scopes, formats: export.Formats()}
}

// Update returns (model, cmd, done). Confirming emits an ExportMsg.
func (m ExportModalModel) Update(msg tea.Msg) (ExportModalModel, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch key.String() {
	case "esc", "q":
		return m, nil, true
	case "j", "down", "tab":
		m.row = (m.row + 1) % 2
	case "k", "up", "shift+tab":
		m.row = (m.row + 1) % 2
	case "l", "right", " ":
		m.cycle(1)
	case "h", "left":
		m.cycle(-1)
	case "enter":
		return m.confirm(false)
	case "y":
		if m.Kind() == export.PDF {
			m.warning = "PDF cannot be copied to the clipboard"
			return m, nil, false
		}
		return m.confirm(true)
	}
	return m, nil, false
}

func (m ExportModalModel) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Export Notes"))
	s.WriteString("\n\n")

	scope := m.scopes[m.scope]
	s.WriteString(m.renderRow(0, "Scope", fmt.Sprintf("%s (%d)", scope.label, len(scope.notes))))
	info := m.formats[m.format]
	s.WriteString(m.renderRow(1, "Format", info.Name))
	s.WriteString("    " + mutedStyle.Render(info.Description) + "\n")

	if len(scope.notes) == 0 {
		s.WriteString("\n" + warningStyle.Render("Nothing to export") + "\n")
	}
	if m.warning != "" {
		s.WriteString("\n" + warningStyle.Render(m.warning) + "\n")
	}

	s.WriteString(helpStyle.Render("jk: field • h/l: change • enter: save file • y: copy • esc: cancel"))
	return boxStyle.Render(s.String())
}

// Kind returns the selected format
func (m ExportModalModel) Kind() export.Kind {
	return m.formats[m.format].Kind
}

// Notes returns the notes in the selected scope
func (m ExportModalModel) Notes() []notes.Note {
	return m.scopes[m.scope].notes
}

func (m ExportModalModel) renderRow(row int, label, value string) string {
	line := fmt.Sprintf("%-8s < %s >", label+":", value)
	if row == m.row {
		return itemHighlightStyle.Render("> "+line) + "\n"
	}
	return itemStyle.Render("  "+line) + "\n"
}

func (m *ExportModalModel) cycle(delta int) {
	m.warning = ""
	if m.row == 0 {
		m.scope = (m.scope + delta + len(m.scopes)) % len(m.scopes)
		return
	}
	m.format = (m.format + delta + len(m.formats)) % len(m.formats)
}

func (m ExportModalModel) confirm(clipboard bool) (ExportModalModel, tea.Cmd, bool) {
	list := m.Notes()
	if len(list) == 0 {
		m.warning = "Nothing to export"
		return m, nil, false
	}
	kind := m.Kind()
	return m, func() tea.Msg {
		return messages.ExportMsg{Notes: list, Kind: kind, Clipboard: clipboard}
	}, true
}
