package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jotter/internal/markdown"
	"jotter/internal/tui/browser"
	"jotter/internal/tui/messages"
	"jotter/internal/tui/shared"
	"jotter/internal/workspace"
)

// AppModel is the root model. It owns the workspace and runs every write the
// notes view asks for.
type AppModel struct {
	ws        *workspace.Workspace
	notesView browser.Model
	status    messages.StatusMsg
	clock     func() time.Time
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root application model
func NewAppModel(ws *workspace.Workspace) AppModel {
	return newAppModel(ws, markdown.NewTerminalRenderer(""), time.Now)
}

func newAppModel(ws *workspace.Workspace, renderer *markdown.TerminalRenderer, clock func() time.Time) AppModel {
	return AppModel{
		ws:        ws,
		notesView: browser.New(ws.Notes(), ws.Config(), renderer, clock),
		clock:     clock,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.notesView.SetSize(msg.Width, msg.Height-2) // status bar and its border
		return m, nil

	case messages.NotesChangedMsg:
		m.notesView.SetNotes(m.ws.Notes())
		return m, nil

	case messages.StatusMsg:
		m.status = msg
		return m, nil

	case opDoneMsg:
		m.notesView.SetNotes(m.ws.Notes())
		if msg.focusID != "" {
			m.notesView.FocusNote(msg.focusID)
		}
		m.status = msg.status
		return m, nil

	case messages.SaveTagsMsg:
		return m, saveTagsCmd(m.ws, msg)

	case messages.CreateNoteMsg:
		return m, createNoteCmd(m.ws, msg, m.clock())

	case messages.ExportMsg:
		return m, exportCmd(m.ws.Config().ExportDir, msg, m.clock())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		m.status = messages.StatusMsg{}

		if !m.notesView.IsInModalState() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "r":
				ws := m.ws
				return m, func() tea.Msg {
					ws.Reload()
					return messages.NotesChangedMsg{}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.notesView, cmd = m.notesView.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup("Jotter - Keyboard Shortcuts", helpSections, m.width, m.height)
	}

	var statusText string
	switch {
	case m.status.Error:
		statusText = StatusErrStyle.Render(m.status.Text)
	case m.status.Text != "":
		statusText = StatusOkStyle.Render(m.status.Text)
	default:
		statusText = TitleStyle.Render("jotter") + " " + HelpStyle.Render("r:reload | ?:help | q:quit")
	}
	statusBar := StatusBarStyle.Width(m.width).Render(statusText)

	return lipgloss.JoinVertical(lipgloss.Left, m.notesView.View(), statusBar)
}

var helpSections = []shared.HelpSection{
	{
		Title: "Notes",
		Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Navigate notes"},
			{Key: "J / K", Desc: "Scroll preview"},
			{Key: "enter", Desc: "Full preview (esc to return)"},
			{Key: "n", Desc: "New note from a template"},
			{Key: "g", Desc: "Edit tags of the selected note"},
			{Key: "e", Desc: "Export notes"},
			{Key: "r", Desc: "Reload from disk"},
		},
	},
	{
		Title: "Search & Filters",
		Binds: []shared.HelpBind{
			{Key: "/", Desc: "Search title, content and tags"},
			{Key: "c", Desc: "Cycle category"},
			{Key: "d", Desc: "Cycle date range"},
			{Key: "s", Desc: "Cycle sort field"},
			{Key: "o", Desc: "Toggle sort order"},
			{Key: "x", Desc: "Clear search and filters"},
		},
	},
	{
		Title: "General",
		Binds: []shared.HelpBind{
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
			{Key: "ctrl+c", Desc: "Force quit"},
		},
	},
}
