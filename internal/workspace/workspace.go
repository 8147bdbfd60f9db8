package workspace

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"jotter/internal/categories"
	"jotter/internal/config"
	"jotter/internal/logs"
	"jotter/internal/notes"
)

// Workspace holds the notes loaded from the configured directories
type Workspace struct {
	cfg *config.Config

	mu         sync.RWMutex
	notes      []notes.Note
	categories []string
}

// Load scans the configured directories and parses every note
func Load(cfg *config.Config) *Workspace {
	ws := &Workspace{cfg: cfg}
	ws.Reload()
	return ws
}

// Reload rescans the directories. Unreadable notes are skipped.
func (ws *Workspace) Reload() {
	list := notes.ScanNotes(ws.cfg.Dirs, ws.cfg.RecursiveDirs)
	cats := categories.FromNotes(list, ws.cfg.Categories)

	ws.mu.Lock()
	ws.notes = list
	ws.categories = cats
	ws.mu.Unlock()

	logs.Logger.Printf("Loaded %d notes, %d categories", len(list), len(cats))
}

// Notes returns a snapshot of the loaded notes
func (ws *Workspace) Notes() []notes.Note {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return append([]notes.Note(nil), ws.notes...)
}

// Categories returns the categories used by notes plus the configured ones
func (ws *Workspace) Categories() []string {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return append([]string(nil), ws.categories...)
}

func (ws *Workspace) Config() *config.Config {
	return ws.cfg
}

// Find looks a note up by ID, then by case-insensitive title, then by
// relative path.
func (ws *Workspace) Find(ref string) (notes.Note, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	for _, n := range ws.notes {
		if n.ID == ref {
			return n, true
		}
	}
	for _, n := range ws.notes {
		if strings.EqualFold(n.Title, ref) {
			return n, true
		}
	}
	for _, n := range ws.notes {
		if n.RelPath == ref {
			return n, true
		}
	}
	return notes.Note{}, false
}

// Create writes n into the first notes directory and reloads. now names the
// file of a note without a date.
func (ws *Workspace) Create(n notes.Note, now time.Time) (notes.Note, error) {
	dir := ws.cfg.GetFirstDir()
	if dir == "" {
		return notes.Note{}, fmt.Errorf("no notes directory configured")
	}

	path, err := notes.WriteNote(dir, n, now)
	if err != nil {
		return notes.Note{}, err
	}
	ws.Reload()

	created, err := notes.ParseNoteFile(path, dir)
	if err != nil {
		return notes.Note{}, fmt.Errorf("reading new note: %w", err)
	}
	logs.Logger.Printf("Created note %s at %s", created.ID, path)
	return created, nil
}

// Labels returns the catalog for tag selection: categories plus every tag in use
func (ws *Workspace) Labels() []string {
	return categories.Labels(ws.Notes(), ws.cfg.Categories)
}

// SetTags replaces the tags of the note with the given ID and reloads
func (ws *Workspace) SetTags(id string, tags []string) (notes.Note, error) {
	n, ok := ws.Find(id)
	if !ok || n.ID != id {
		return notes.Note{}, fmt.Errorf("note %q not found", id)
	}
	n.Tags = append([]string{}, tags...)
	if err := notes.Rewrite(n); err != nil {
		return notes.Note{}, err
	}
	ws.Reload()
	logs.Logger.Printf("Tagged %s with %v", id, tags)
	return n, nil
}
