package browser

import (
	"strings"

	"jotter/internal/logs"
	"jotter/internal/notes"
	"jotter/internal/tui/theme"
)

// refreshPreview re-renders the preview pane when the selected note changed.
// Resizing clears previewKey to force a render at the new width.
func (m *Model) refreshPreview() {
	n, ok := m.Selected()
	if !ok {
		m.previewKey = ""
		m.preview.SetContent(theme.Muted.Render("Nothing selected"))
		return
	}

	key := strings.Join([]string{n.ID, n.Title, n.Category, strings.Join(n.Tags, ","), n.Content}, "\x00")
	if key == m.previewKey {
		return
	}
	m.previewKey = key

	m.preview.SetContent(m.renderPreview(n))
	m.preview.GotoTop()
}

func (m *Model) renderPreview(n notes.Note) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(n.Title))
	b.WriteString("\n")

	meta := []string{theme.Date.Render(notes.FormatDate(n.Date))}
	if n.Category != "" {
		meta = append(meta, theme.Category.Render(n.Category))
	}
	for _, tag := range n.Tags {
		meta = append(meta, theme.Tag.Render("#"+tag))
	}
	b.WriteString(strings.Join(meta, "  "))
	b.WriteString("\n\n")

	body := n.Content
	if m.renderer != nil {
		rendered, err := m.renderer.Render(n.Content, m.preview.Width-2)
		if err != nil {
			logs.Logger.Printf("Preview render failed for %s: %v", n.ID, err)
		} else {
			body = rendered
		}
	}
	b.WriteString(body)
	return b.String()
}
