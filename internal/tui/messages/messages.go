package messages

import (
	"jotter/internal/export"
	"jotter/internal/notes"
)

// NotesChangedMsg signals that the workspace was reloaded and views should
// pick up the new note list. The file watcher sends it from its goroutine.
type NotesChangedMsg struct{}

// StatusMsg shows a one-line result in the status bar
type StatusMsg struct {
	Text  string
	Error bool
}

// SaveTagsMsg requests replacing the tags of a note
type SaveTagsMsg struct {
	NoteID string
	Tags   []string
}

// CreateNoteMsg requests writing a new note to disk
type CreateNoteMsg struct {
	Note notes.Note
}

// ExportMsg requests exporting notes, either to the export dir or the clipboard
type ExportMsg struct {
	Notes     []notes.Note
	Kind      export.Kind
	Clipboard bool
}
