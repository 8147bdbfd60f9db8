package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// TerminalRenderer renders markdown as styled terminal text for the preview
// pane. The glamour renderer is rebuilt only when the wrap width changes.
type TerminalRenderer struct {
	mu    sync.Mutex
	style string
	width int
	tr    *glamour.TermRenderer
}

// NewTerminalRenderer creates a renderer using a glamour standard style
// ("dark", "light", "notty", ...). An empty style detects the terminal
// background.
func NewTerminalRenderer(style string) *TerminalRenderer {
	return &TerminalRenderer{style: style}
}

// Render wraps output at width columns.
func (t *TerminalRenderer) Render(markdown string, width int) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if width < 20 {
		width = 20
	}
	if t.tr == nil || t.width != width {
		style := glamour.WithAutoStyle()
		if t.style != "" {
			style = glamour.WithStandardStyle(t.style)
		}
		tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
		if err != nil {
			return "", fmt.Errorf("creating terminal renderer: %w", err)
		}
		t.tr = tr
		t.width = width
	}

	out, err := t.tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
