package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"jotter/internal/logs"
	"jotter/internal/notes"
)

// Scope chooses which notes an export covers.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeSelected Scope = "selected"
)

var ErrBinaryClipboard = errors.New("binary export cannot be copied to the clipboard")

var writeClipboard = clipboard.WriteAll

// Select returns every note for ScopeAll, otherwise only the notes whose ID is
// in selected, in list order.
func Select(list []notes.Note, scope Scope, selected map[string]bool) []notes.Note {
	if scope != ScopeSelected {
		return list
	}
	out := make([]notes.Note, 0, len(selected))
	for _, n := range list {
		if selected[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

// Save writes the export into dir and returns the file path.
func Save(dir string, e Export) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, e.Filename)
	if err := notes.WriteFileAtomic(path, e.Content, 0644); err != nil {
		return "", fmt.Errorf("saving export: %w", err)
	}
	logs.Logger.Printf("Exported %d bytes to %s", len(e.Content), path)
	return path, nil
}

// CopyToClipboard puts a text export on the system clipboard.
func CopyToClipboard(e Export) error {
	if e.MimeType == "application/pdf" {
		return ErrBinaryClipboard
	}
	if err := writeClipboard(string(e.Content)); err != nil {
		return fmt.Errorf("copying export: %w", err)
	}
	return nil
}
