package browser

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jotter/internal/categories"
	"jotter/internal/config"
	"jotter/internal/markdown"
	"jotter/internal/notes"
	"jotter/internal/search"
	"jotter/internal/tui/modals"
	"jotter/internal/tui/shared"
	"jotter/internal/tui/theme"
)

// infoBarHeight is the info bar, its bottom border and the search line under it.
const infoBarHeight = 5

// noteList is shared between the model copies bubbletea passes around; the
// search session writes every new result into it.
type noteList struct {
	results []notes.Note
	cursor  int
	offset  int
}

func (l *noteList) set(results []notes.Note) {
	l.results = results
	if l.cursor >= len(results) {
		l.cursor = max(len(results)-1, 0)
	}
}

// Model is the main notes view: a filtered list with a live preview pane
type Model struct {
	cfg     *config.Config
	all     []notes.Note
	session *search.Session
	list    *noteList
	cats    []string

	searchInput textinput.Model
	searching   bool

	preview     viewport.Model
	renderer    *markdown.TerminalRenderer
	previewKey  string
	fullPreview bool

	tagPicker *modals.TagPickerModel
	gallery   *modals.TemplateGalleryModel
	exporter  *modals.ExportModalModel

	infoBar InfoBar
	clock   func() time.Time
	width   int
	height  int
}

// New creates the view over all. A nil clock uses time.Now.
func New(all []notes.Note, cfg *config.Config, renderer *markdown.TerminalRenderer, clock func() time.Time) Model {
	if clock == nil {
		clock = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Search notes..."
	ti.CharLimit = 100
	ti.Prompt = ""

	opts := search.Options{
		Category:  search.CategoryAll,
		DateRange: search.RangeAll,
		SortBy:    search.SortField(cfg.DefaultSort),
		SortOrder: search.SortOrder(cfg.DefaultOrder),
	}.Normalize()

	list := &noteList{}
	m := Model{
		cfg:         cfg,
		all:         all,
		list:        list,
		cats:        categoryCycle(all, cfg.Categories),
		searchInput: ti,
		preview:     viewport.New(40, 10),
		renderer:    renderer,
		infoBar:     NewInfoBar(),
		clock:       clock,
	}
	m.session = search.NewSession(all, opts, clock, list.set)
	return m
}

// SetSize updates the dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.infoBar.Width = width

	m.preview.Width = m.previewWidth()
	m.preview.Height = max(m.bodyHeight()-2, 1)
	m.previewKey = ""
	m.refreshPreview()
	m.ensureCursorVisible()
}

// SetNotes replaces the note list and keeps the cursor on the same note
func (m *Model) SetNotes(all []notes.Note) {
	current, hasCurrent := m.Selected()
	m.all = all
	m.cats = categoryCycle(all, m.cfg.Categories)
	m.session.SetNotes(all)
	if hasCurrent {
		m.FocusNote(current.ID)
	}
	m.previewKey = ""
	m.refreshPreview()
}

// FocusNote moves the cursor to the note with id when it is in the results
func (m *Model) FocusNote(id string) {
	for i, n := range m.list.results {
		if n.ID == id {
			m.list.cursor = i
			m.ensureCursorVisible()
			m.refreshPreview()
			return
		}
	}
}

// Selected returns the note under the cursor
func (m Model) Selected() (notes.Note, bool) {
	if m.list.cursor < 0 || m.list.cursor >= len(m.list.results) {
		return notes.Note{}, false
	}
	return m.list.results[m.list.cursor], true
}

// Results returns the filtered and sorted notes on screen
func (m Model) Results() []notes.Note {
	return m.list.results
}

// Session exposes the search inputs
func (m Model) Session() *search.Session {
	return m.session
}

// IsInModalState reports whether the view wants every key, including q and ?
func (m Model) IsInModalState() bool {
	return m.searching || m.fullPreview || m.tagPicker != nil || m.gallery != nil || m.exporter != nil
}

// Update handles messages for the notes view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch {
	case m.tagPicker != nil:
		picker, cmd, done := m.tagPicker.Update(msg)
		m.tagPicker = &picker
		if done {
			m.tagPicker = nil
		}
		return m, cmd
	case m.gallery != nil:
		gallery, cmd, done := m.gallery.Update(msg)
		m.gallery = &gallery
		if done {
			m.gallery = nil
		}
		return m, cmd
	case m.exporter != nil:
		exporter, cmd, done := m.exporter.Update(msg)
		m.exporter = &exporter
		if done {
			m.exporter = nil
		}
		return m, cmd
	}

	if m.searching {
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.handleSearchKey(key)
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.fullPreview {
		return m.handlePreviewKey(key)
	}
	return m.handleNormalKey(key)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "J", "pgdown":
		m.preview.ScrollDown(max(m.preview.Height/2, 1))
	case "K", "pgup":
		m.preview.ScrollUp(max(m.preview.Height/2, 1))
	case "enter":
		if _, ok := m.Selected(); ok {
			m.fullPreview = true
			m.resizePreview()
		}
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.session.Query())
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()
	case "c":
		m.session.SetCategory(nextCategory(m.cats, m.session.Options().Category))
		m.afterFilter()
	case "d":
		m.session.SetDateRange(search.NextDateRange(m.session.Options().DateRange))
		m.afterFilter()
	case "s":
		m.session.SetSortBy(search.NextSortField(m.session.Options().SortBy))
		m.afterFilter()
	case "o":
		m.session.ToggleOrder()
		m.afterFilter()
	case "x":
		m.session.Clear()
		m.searchInput.SetValue("")
		m.afterFilter()
	case "n":
		gallery := modals.NewTemplateGallery(m.clock())
		m.gallery = &gallery
		return m, textinput.Blink
	case "g":
		if n, ok := m.Selected(); ok {
			labels := categories.Labels(m.all, m.cfg.Categories)
			picker := modals.NewTagPicker(n, labels, m.cfg.MaxCategories)
			m.tagPicker = &picker
		}
	case "e":
		var current *notes.Note
		if n, ok := m.Selected(); ok {
			current = &n
		}
		exporter := modals.NewExportModal(m.all, m.list.results, current)
		m.exporter = &exporter
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.session.SetQuery("")
		m.afterFilter()
		return m, nil
	case "up", "ctrl+k":
		m.moveCursor(-1)
		return m, nil
	case "down", "ctrl+j":
		m.moveCursor(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.session.SetQuery(m.searchInput.Value())
	m.afterFilter()
	return m, cmd
}

func (m Model) handlePreviewKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q":
		m.fullPreview = false
		m.resizePreview()
		return m, nil
	case "g", "home":
		m.preview.GotoTop()
	case "G", "end":
		m.preview.GotoBottom()
	case "j", "down":
		m.preview.ScrollDown(1)
	case "k", "up":
		m.preview.ScrollUp(1)
	case "d", "ctrl+d", "pgdown", " ":
		m.preview.ScrollDown(max(m.preview.Height/2, 1))
	case "u", "ctrl+u", "pgup":
		m.preview.ScrollUp(max(m.preview.Height/2, 1))
	}
	return m, nil
}

// View renders the notes view
func (m Model) View() string {
	m.infoBar.SetContext(m.mode(), m.session)

	switch {
	case m.tagPicker != nil:
		return m.overlay(m.tagPicker.View())
	case m.gallery != nil:
		return m.overlay(m.gallery.View())
	case m.exporter != nil:
		return m.overlay(m.exporter.View())
	}

	var b strings.Builder
	b.WriteString(m.infoBar.View())
	b.WriteString("\n")
	if m.searching {
		b.WriteString(searchStyle.Render("/") + m.searchInput.View())
	}
	b.WriteString("\n")

	body := m.bodyHeight()
	if m.fullPreview {
		b.WriteString(theme.PaneFocused.Width(m.width - 2).Render(shared.FitHeight(m.preview.View(), body-2)))
	} else {
		listPane := theme.Pane.Width(m.listWidth()).Render(shared.FitHeight(m.renderList(), body-2))
		previewPane := theme.Pane.Width(m.previewWidth()).Render(shared.FitHeight(m.preview.View(), body-2))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.infoBar.RenderHints()))
	return b.String()
}

func (m Model) renderList() string {
	results := m.list.results
	if len(results) == 0 {
		if len(m.all) == 0 {
			return theme.Muted.Render("No notes yet. Press n to create one.")
		}
		return theme.Muted.Render("No notes match. Press x to clear filters.")
	}

	var b strings.Builder
	end := min(m.list.offset+m.visibleRows(), len(results))
	for i := m.list.offset; i < end; i++ {
		prefix := "  "
		if i == m.list.cursor {
			prefix = theme.Cursor.Render("> ")
		}
		b.WriteString(prefix + shared.StyledNoteLine(results[i], m.listWidth()-2) + "\n")
	}
	return b.String()
}

func (m Model) overlay(modal string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (m Model) mode() string {
	switch {
	case m.searching:
		return ModeSearch
	case m.fullPreview:
		return ModePreview
	}
	return ModeNormal
}

// afterFilter keeps the cursor in range and the preview in sync after the
// session delivered a new result.
func (m *Model) afterFilter() {
	m.ensureCursorVisible()
	m.refreshPreview()
}

func (m *Model) moveCursor(delta int) {
	next := m.list.cursor + delta
	if next < 0 || next >= len(m.list.results) {
		return
	}
	m.list.cursor = next
	m.ensureCursorVisible()
	m.refreshPreview()
}

func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.list.cursor < m.list.offset {
		m.list.offset = m.list.cursor
	}
	if m.list.cursor >= m.list.offset+visible {
		m.list.offset = m.list.cursor - visible + 1
	}
	if m.list.offset < 0 {
		m.list.offset = 0
	}
}

func (m Model) bodyHeight() int {
	return max(m.height-infoBarHeight-1, 3)
}

func (m Model) visibleRows() int {
	return max(m.bodyHeight()-2, 1)
}

func (m Model) listWidth() int {
	return max(m.width*2/5-2, 20)
}

func (m Model) previewWidth() int {
	if m.fullPreview {
		return max(m.width-4, 20)
	}
	return max(m.width-m.listWidth()-6, 20)
}

func (m *Model) resizePreview() {
	m.preview.Width = m.previewWidth()
	m.previewKey = ""
	m.refreshPreview()
}

// categoryCycle is "all" followed by every category in use.
func categoryCycle(all []notes.Note, extra []string) []string {
	return append([]string{search.CategoryAll}, categories.FromNotes(all, extra)...)
}

func nextCategory(cycle []string, current string) string {
	for i, c := range cycle {
		if c == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
