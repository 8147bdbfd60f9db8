package modals

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jotter/internal/categories"
	"jotter/internal/notes"
	"jotter/internal/tui/messages"
)

// TagPickerModel edits the tags of one note. The selection is bounded by the
// configured maximum; the catalog is every category and tag in use.
type TagPickerModel struct {
	noteID    string
	noteTitle string
	picker    *categories.Picker

	textInput  textinput.Model
	query      string
	filtered   []string
	cursor     int
	showCreate bool // query names nothing in the catalog
	filterMode bool
	createMode bool
	warning    string
}

// NewTagPicker opens a picker over catalog with the note's current tags selected
func NewTagPicker(n notes.Note, catalog []string, limit int) TagPickerModel {
	ti := textinput.New()
	ti.Placeholder = "Press / to filter..."
	ti.CharLimit = 50
	ti.Width = 40
	ti.Blur()

	p := categories.New(catalog, nil, limit)
	for _, tag := range n.Tags {
		p.Add(tag)
		_ = p.Select(tag)
	}

	return TagPickerModel{
		noteID:    n.ID,
		noteTitle: n.Title,
		picker:    p,
		textInput: ti,
		filtered:  p.Catalog(),
	}
}

// Update returns (model, cmd, done). Saving emits a SaveTagsMsg.
func (m TagPickerModel) Update(msg tea.Msg) (TagPickerModel, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch {
	case m.filterMode:
		switch key.String() {
		case "esc":
			m.clearFilter()
			m.textInput.Blur()
			m.filterMode = false
		case "enter":
			m.textInput.Blur()
			m.filterMode = false
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(key)
			m.query = m.textInput.Value()
			m.applyFilter()
			m.cursor = 0
			return m, cmd, false
		}
		return m, nil, false

	case m.createMode:
		switch key.String() {
		case "esc":
			m.leaveCreate()
		case "enter":
			m.addAndSelect(m.textInput.Value())
			m.leaveCreate()
			m.applyFilter()
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(key)
			return m, cmd, false
		}
		return m, nil, false
	}

	switch key.String() {
	case "a", "n":
		m.textInput.SetValue("")
		m.textInput.Placeholder = "New tag name..."
		m.textInput.Focus()
		m.createMode = true
		return m, textinput.Blink, false

	case "/":
		m.textInput.Focus()
		m.filterMode = true
		return m, textinput.Blink, false

	case "enter":
		id, tags := m.noteID, m.picker.Selected()
		return m, func() tea.Msg {
			return messages.SaveTagsMsg{NoteID: id, Tags: tags}
		}, true

	case "esc":
		if m.query != "" {
			m.clearFilter()
			return m, nil, false
		}
		return m, nil, true

	case "tab", " ":
		m.toggleAtCursor()

	case "j", "down":
		last := len(m.filtered) - 1
		if m.showCreate {
			last++
		}
		if m.cursor < last {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	}
	return m, nil, false
}

func (m TagPickerModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Tags: " + m.noteTitle))
	s.WriteString("\n\n")
	s.WriteString(m.renderChips())
	s.WriteString("\n")
	if m.warning != "" {
		s.WriteString(warningStyle.Render(m.warning))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	if m.createMode {
		s.WriteString(titleStyle.Render("New tag: "))
	} else if m.filterMode {
		s.WriteString(titleStyle.Render("Filtering: "))
	}
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")

	switch {
	case len(m.picker.Catalog()) == 0:
		s.WriteString(itemStyle.Render("No tags yet. Press 'a' to add one."))
		s.WriteString("\n")
	case len(m.filtered) == 0 && !m.showCreate:
		s.WriteString(itemStyle.Render("No matching tags"))
		s.WriteString("\n")
	default:
		for i, item := range m.filtered {
			s.WriteString(m.renderItem(i, item))
		}
		if m.showCreate {
			s.WriteString(m.renderCreate(len(m.filtered)))
		}
	}

	var help string
	switch {
	case m.createMode:
		help = "enter: add • esc: cancel"
	case m.filterMode:
		help = "enter: apply filter • esc: cancel"
	case m.query != "":
		help = "jk: navigate • space: toggle • a: add • /: filter • esc: clear • enter: save"
	default:
		help = "jk: navigate • space: toggle • a: add • /: filter • enter: save • esc: cancel"
	}
	s.WriteString(helpStyle.Render(help))

	return boxStyle.Render(s.String())
}

// Selected returns the current selection in selection order
func (m TagPickerModel) Selected() []string {
	return m.picker.Selected()
}

// IsTyping reports whether keys go to the text input
func (m TagPickerModel) IsTyping() bool {
	return m.filterMode || m.createMode
}

func (m TagPickerModel) renderChips() string {
	selected := m.picker.Selected()
	if len(selected) == 0 {
		return mutedStyle.Render("No tags selected " + m.picker.Status())
	}
	chips := make([]string, len(selected))
	for i, tag := range selected {
		chips[i] = chipStyle.Render("#" + tag)
	}
	return strings.Join(chips, " ") + " " + mutedStyle.Render(m.picker.Status())
}

func (m TagPickerModel) renderItem(index int, item string) string {
	selected := m.picker.IsSelected(item)
	checkbox := "[ ]"
	if selected {
		checkbox = "[x]"
	}

	style := itemStyle
	switch {
	case index == m.cursor:
		style = itemHighlightStyle
	case selected:
		style = itemSelectedStyle
	case !m.picker.CanAddMore():
		style = mutedStyle
	}
	return style.Render(checkbox+" "+item) + "\n"
}

func (m TagPickerModel) renderCreate(index int) string {
	style := createNewStyle
	if index == m.cursor {
		style = itemHighlightStyle.Foreground(createNewStyle.GetForeground())
	}
	return style.Render("[ ] + Create new: \""+strings.TrimSpace(m.query)+"\"") + "\n"
}

func (m *TagPickerModel) toggleAtCursor() {
	if m.showCreate && m.cursor == len(m.filtered) {
		m.addAndSelect(m.query)
		m.applyFilter()
		return
	}
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return
	}

	item := m.filtered[m.cursor]
	if !m.picker.IsSelected(item) && !m.picker.CanAddMore() {
		m.warning = limitWarning(m.picker)
		return
	}
	m.picker.Toggle(item)
	m.warning = ""
}

func (m *TagPickerModel) addAndSelect(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	m.picker.Add(name)
	if err := m.picker.Select(name); err != nil {
		if errors.Is(err, categories.ErrLimitReached) {
			m.warning = limitWarning(m.picker)
		}
		return
	}
	m.warning = ""
}

func (m *TagPickerModel) applyFilter() {
	m.filtered = m.picker.Filter(m.query)
	m.showCreate = strings.TrimSpace(m.query) != "" && !m.picker.HasExact(m.query)
}

func (m *TagPickerModel) clearFilter() {
	m.textInput.SetValue("")
	m.query = ""
	m.cursor = 0
	m.applyFilter()
}

func (m *TagPickerModel) leaveCreate() {
	m.textInput.SetValue("")
	m.textInput.Placeholder = "Press / to filter..."
	m.textInput.Blur()
	m.createMode = false
}

func limitWarning(p *categories.Picker) string {
	return "Limit reached " + p.Status() + ": remove a tag first"
}
