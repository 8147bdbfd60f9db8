package modals

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jotter/internal/templates"
	"jotter/internal/tui/messages"
	"jotter/internal/tui/shared"
)

const previewLines = 6

// TemplateGalleryModel picks a template by category tab or fuzzy search, then
// asks for a title before creating the note.
type TemplateGalleryModel struct {
	now       time.Time
	tabs      []string
	tab       int
	search    textinput.Model
	searching bool
	items     []templates.Template
	cursor    int

	titleInput *shared.TextInput
	chosen     templates.Template
}

// NewTemplateGallery lists the templates rendered at now
func NewTemplateGallery(now time.Time) TemplateGalleryModel {
	ti := textinput.New()
	ti.Placeholder = "Press / to search..."
	ti.CharLimit = 50
	ti.Width = 40
	ti.Blur()

	m := TemplateGalleryModel{
		now:    now,
		tabs:   append([]string{"all"}, templates.Categories()...),
		search: ti,
	}
	m.refresh()
	return m
}

// Update returns (model, cmd, done). Creating emits a CreateNoteMsg.
func (m TemplateGalleryModel) Update(msg tea.Msg) (TemplateGalleryModel, tea.Cmd, bool) {
	if m.titleInput != nil {
		cmd, done, cancelled := m.titleInput.Update(msg)
		switch {
		case cancelled:
			m.titleInput = nil
			return m, nil, false
		case done:
			n := m.chosen.NewNote(m.now)
			n.Title = m.titleInput.Value()
			return m, func() tea.Msg { return messages.CreateNoteMsg{Note: n} }, true
		}
		return m, cmd, false
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	if m.searching {
		switch key.String() {
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.searching = false
			m.refresh()
		case "enter":
			m.search.Blur()
			m.searching = false
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(key)
			m.refresh()
			return m, cmd, false
		}
		return m, nil, false
	}

	switch key.String() {
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
			return m, nil, false
		}
		return m, nil, true
	case "/":
		m.search.Focus()
		m.searching = true
		return m, textinput.Blink, false
	case "tab", "l", "right":
		m.tab = (m.tab + 1) % len(m.tabs)
		m.refresh()
	case "shift+tab", "h", "left":
		m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
		m.refresh()
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if t, ok := m.Current(); ok {
			m.chosen = t
			m.titleInput = shared.NewTextInput("Title", t.Title, validateTitle)
			m.titleInput.SetWidth(52)
			return m, textinput.Blink, false
		}
	}
	return m, nil, false
}

func (m TemplateGalleryModel) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("New Note"))
	s.WriteString("\n\n")

	if m.titleInput != nil {
		s.WriteString(mutedStyle.Render("Template: " + m.chosen.Name))
		s.WriteString("\n\n")
		s.WriteString(m.titleInput.View())
		return boxStyle.Render(s.String())
	}

	tabs := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		label := tab
		if tab == "all" {
			label = "All"
		}
		if i == m.tab {
			tabs[i] = tabActiveStyle.Render(label)
		} else {
			tabs[i] = tabInactiveStyle.Render(label)
		}
	}
	s.WriteString(strings.Join(tabs, "  "))
	s.WriteString("\n\n")

	if m.searching {
		s.WriteString(titleStyle.Render("Search: "))
	}
	s.WriteString(m.search.View())
	s.WriteString("\n\n")

	if len(m.items) == 0 {
		s.WriteString(itemStyle.Render("No templates found"))
		s.WriteString("\n")
	}
	for i, t := range m.items {
		line := t.Name + " " + mutedStyle.Render("["+t.Category+"]")
		if i == m.cursor {
			s.WriteString(itemHighlightStyle.Render("> "+t.Name) + " " + mutedStyle.Render("["+t.Category+"]") + "\n")
		} else {
			s.WriteString("  " + itemStyle.Render(line) + "\n")
		}
	}

	if t, ok := m.Current(); ok {
		s.WriteString("\n")
		s.WriteString(mutedStyle.Render(firstLines(t.Content, previewLines)))
		s.WriteString("\n")
	}

	help := "h/l: category • jk: navigate • /: search • enter: use • esc: close"
	if m.searching {
		help = "enter: apply search • esc: clear"
	}
	s.WriteString(helpStyle.Render(help))
	return boxStyle.Render(s.String())
}

// Current returns the highlighted template
func (m TemplateGalleryModel) Current() (templates.Template, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return templates.Template{}, false
	}
	return m.items[m.cursor], true
}

// IsTyping reports whether keys go to a text input
func (m TemplateGalleryModel) IsTyping() bool {
	return m.searching || m.titleInput != nil
}

// refresh applies the search to the templates of the current tab.
func (m *TemplateGalleryModel) refresh() {
	inTab := make(map[string]bool)
	for _, t := range templates.ByCategory(m.tabs[m.tab], m.now) {
		inTab[t.ID] = true
	}

	var items []templates.Template
	for _, t := range templates.Search(m.search.Value(), m.now) {
		if inTab[t.ID] {
			items = append(items, t)
		}
	}
	m.items = items
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title cannot be empty")
	}
	return nil
}

func firstLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = append(lines[:n], "...")
	}
	return strings.Join(lines, "\n")
}
