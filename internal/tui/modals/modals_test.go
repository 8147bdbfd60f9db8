package modals

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jotter/internal/export"
	"jotter/internal/notes"
	"jotter/internal/templates"
	"jotter/internal/tui/messages"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m TagPickerModel, s string) TagPickerModel {
	t.Helper()
	for _, r := range s {
		m, _, _ = m.Update(key(string(r)))
	}
	return m
}

func TestTagPicker_ToggleAndLimit(t *testing.T) {
	n := notes.Note{ID: "n1", Title: "Sync", Tags: []string{"go"}}
	m := NewTagPicker(n, []string{"Work", "go", "review"}, 2)

	m, _, _ = m.Update(key("space")) // Work
	if got := m.Selected(); len(got) != 2 || got[1] != "Work" {
		t.Fatalf("expected Work selected, got %v", got)
	}

	m, _, _ = m.Update(key("j"))
	m, _, _ = m.Update(key("j"))
	m, _, _ = m.Update(key("space")) // review, over the limit
	if len(m.Selected()) != 2 {
		t.Errorf("expected selection to stay at the limit, got %v", m.Selected())
	}
	if !strings.Contains(m.View(), "Limit reached (2/2)") {
		t.Errorf("expected limit warning in view:\n%s", m.View())
	}

	m, _, _ = m.Update(key("k"))
	m, _, _ = m.Update(key("space")) // deselect go
	if len(m.Selected()) != 1 || m.Selected()[0] != "Work" {
		t.Errorf("expected go removed, got %v", m.Selected())
	}
}

func TestTagPicker_SaveEmitsMessage(t *testing.T) {
	n := notes.Note{ID: "n1", Title: "Sync", Tags: []string{"go"}}
	m := NewTagPicker(n, []string{"go"}, 5)

	_, cmd, done := m.Update(key("enter"))
	if !done || cmd == nil {
		t.Fatal("expected enter to finish with a command")
	}
	msg, ok := cmd().(messages.SaveTagsMsg)
	if !ok || msg.NoteID != "n1" || len(msg.Tags) != 1 || msg.Tags[0] != "go" {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestTagPicker_CancelEmitsNothing(t *testing.T) {
	m := NewTagPicker(notes.Note{ID: "n1"}, nil, 5)

	_, cmd, done := m.Update(key("esc"))
	if !done || cmd != nil {
		t.Errorf("expected esc to close without saving, done=%v cmd=%v", done, cmd != nil)
	}
}

func TestTagPicker_CreateNew(t *testing.T) {
	m := NewTagPicker(notes.Note{ID: "n1"}, []string{"Work"}, 5)

	m, _, _ = m.Update(key("a"))
	if !m.IsTyping() {
		t.Fatal("expected create mode")
	}
	m = typeText(t, m, "idea")
	m, _, _ = m.Update(key("enter"))

	if m.IsTyping() {
		t.Error("expected create mode to end")
	}
	if got := m.Selected(); len(got) != 1 || got[0] != "idea" {
		t.Errorf("expected new tag selected, got %v", got)
	}
	if !strings.Contains(m.View(), "[x] idea") {
		t.Errorf("expected new tag in catalog:\n%s", m.View())
	}
}

func TestTagPicker_FilterOffersCreate(t *testing.T) {
	m := NewTagPicker(notes.Note{ID: "n1"}, []string{"Work", "review"}, 5)

	m, _, _ = m.Update(key("/"))
	m = typeText(t, m, "rev")
	m, _, _ = m.Update(key("enter"))

	view := m.View()
	if !strings.Contains(view, "review") || strings.Contains(view, "Work") {
		t.Errorf("expected filtered catalog:\n%s", view)
	}
	if !strings.Contains(view, `Create new: "rev"`) {
		t.Errorf("expected create option:\n%s", view)
	}

	m, _, _ = m.Update(key("j"))
	m, _, _ = m.Update(key("space"))
	if got := m.Selected(); len(got) != 1 || got[0] != "rev" {
		t.Errorf("expected query added as tag, got %v", got)
	}

	m, _, done := m.Update(key("esc"))
	if done {
		t.Error("expected first esc to clear the filter")
	}
	if !strings.Contains(m.View(), "Work") {
		t.Error("expected full catalog after clearing the filter")
	}
}

var galleryNow = time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

func TestTemplateGallery_Tabs(t *testing.T) {
	m := NewTemplateGallery(galleryNow)
	if len(m.items) != len(templates.IDs()) {
		t.Fatalf("expected full catalog, got %d", len(m.items))
	}

	m, _, _ = m.Update(key("l"))
	if cur, ok := m.Current(); !ok || cur.ID != "blank" || len(m.items) != 1 {
		t.Errorf("expected Basic tab, got %+v", m.items)
	}

	m, _, _ = m.Update(key("h"))
	m, _, _ = m.Update(key("h"))
	for _, item := range m.items {
		if item.Category != "Ideas" {
			t.Errorf("expected last tab to be Ideas, got %s", item.Category)
		}
	}
}

func TestTemplateGallery_SearchAndCreate(t *testing.T) {
	m := NewTemplateGallery(galleryNow)

	m, _, _ = m.Update(key("/"))
	for _, r := range "shop" {
		m, _, _ = m.Update(key(string(r)))
	}
	m, _, _ = m.Update(key("enter"))
	if cur, ok := m.Current(); !ok || cur.ID != "shopping" || len(m.items) != 1 {
		t.Fatalf("expected shopping template, got %+v", m.items)
	}

	m, _, _ = m.Update(key("enter"))
	if !m.IsTyping() || !strings.Contains(m.View(), "Template: Shopping List") {
		t.Fatalf("expected title prompt:\n%s", m.View())
	}

	_, cmd, done := m.Update(key("enter"))
	if !done || cmd == nil {
		t.Fatal("expected note creation")
	}
	msg, ok := cmd().(messages.CreateNoteMsg)
	if !ok {
		t.Fatalf("unexpected message %T", cmd())
	}
	want, _ := templates.Get("shopping", galleryNow)
	if msg.Note.Title != "Shopping List" || msg.Note.Content != want.Content || !msg.Note.Date.Equal(galleryNow) {
		t.Errorf("unexpected note %+v", msg.Note)
	}
}

func TestTemplateGallery_EmptyTitleRejected(t *testing.T) {
	m := NewTemplateGallery(galleryNow)

	m, _, _ = m.Update(key("enter"))
	m, _, _ = m.Update(key("ctrl+u"))
	m, cmd, done := m.Update(key("enter"))
	if done || cmd != nil {
		t.Fatal("expected empty title to be rejected")
	}
	if !strings.Contains(m.View(), "title cannot be empty") {
		t.Errorf("expected validation error:\n%s", m.View())
	}

	m, _, done = m.Update(key("esc"))
	if done || m.IsTyping() {
		t.Error("expected esc to return to the gallery")
	}
}

func exportNotes() []notes.Note {
	return []notes.Note{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
		{ID: "c", Title: "Gamma"},
	}
}

func TestExportModal_Defaults(t *testing.T) {
	all := exportNotes()
	m := NewExportModal(all, all[:1], &all[2])

	_, cmd, done := m.Update(key("enter"))
	if !done || cmd == nil {
		t.Fatal("expected export request")
	}
	msg := cmd().(messages.ExportMsg)
	if msg.Kind != export.JSON || msg.Clipboard || len(msg.Notes) != 1 || msg.Notes[0].ID != "a" {
		t.Errorf("unexpected request %+v", msg)
	}
}

func TestExportModal_ScopesAndFormats(t *testing.T) {
	all := exportNotes()
	m := NewExportModal(all, all[:1], &all[2])

	m, _, _ = m.Update(key("l"))
	if len(m.Notes()) != 3 {
		t.Errorf("expected all notes, got %d", len(m.Notes()))
	}
	m, _, _ = m.Update(key("l"))
	if got := m.Notes(); len(got) != 1 || got[0].ID != "c" {
		t.Errorf("expected current note, got %+v", got)
	}

	m, _, _ = m.Update(key("j"))
	m, _, _ = m.Update(key("l"))
	if m.Kind() != export.Text {
		t.Errorf("expected text format, got %s", m.Kind())
	}

	_, cmd, done := m.Update(key("y"))
	if !done {
		t.Fatal("expected clipboard export")
	}
	if msg := cmd().(messages.ExportMsg); !msg.Clipboard || msg.Kind != export.Text {
		t.Errorf("unexpected request %+v", msg)
	}
}

func TestExportModal_PDFClipboardRefused(t *testing.T) {
	all := exportNotes()
	m := NewExportModal(all, all, nil)

	m, _, _ = m.Update(key("j"))
	m, _, _ = m.Update(key("h")) // wraps to PDF
	if m.Kind() != export.PDF {
		t.Fatalf("expected PDF, got %s", m.Kind())
	}

	m, cmd, done := m.Update(key("y"))
	if done || cmd != nil {
		t.Error("expected clipboard export of PDF to be refused")
	}
	if !strings.Contains(m.View(), "cannot be copied") {
		t.Errorf("expected warning:\n%s", m.View())
	}
}

func TestExportModal_EmptyScope(t *testing.T) {
	m := NewExportModal(exportNotes(), nil, nil)

	m, cmd, done := m.Update(key("enter"))
	if done || cmd != nil {
		t.Error("expected empty scope to block export")
	}
	if !strings.Contains(m.View(), "Nothing to export") {
		t.Errorf("expected warning:\n%s", m.View())
	}
}
