package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"jotter/internal/notes"
)

// Kind identifies an export format.
type Kind string

const (
	JSON     Kind = "json"
	Text     Kind = "txt"
	Markdown Kind = "md"
	PDF      Kind = "pdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Info describes an export format for pickers and help text.
type Info struct {
	Kind        Kind
	Name        string
	Description string
	MimeType    string
}

var formats = []Info{
	{JSON, "JSON", "Machine-readable format", "application/json"},
	{Text, "Plain Text", "Simple text file", "text/plain"},
	{Markdown, "Markdown", "Formatted text", "text/markdown"},
	{PDF, "PDF", "Printable document", "application/pdf"},
}

// Formats lists the export formats in display order.
func Formats() []Info {
	return append([]Info(nil), formats...)
}

// Lookup returns the format info for kind.
func Lookup(kind Kind) (Info, bool) {
	for _, f := range formats {
		if f.Kind == kind {
			return f, true
		}
	}
	return Info{}, false
}

// ParseKind accepts a format id or a common alias ("text", "markdown").
func ParseKind(s string) (Kind, error) {
	switch k := strings.ToLower(strings.TrimSpace(s)); k {
	case "json":
		return JSON, nil
	case "txt", "text", "plain":
		return Text, nil
	case "md", "markdown":
		return Markdown, nil
	case "pdf":
		return PDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Export is a formatted export ready to be saved or copied.
type Export struct {
	Content  []byte
	Filename string
	MimeType string
}

const ruleWidth = 50

// Format renders notes in the given format. The filename carries now as unix
// milliseconds.
func Format(list []notes.Note, kind Kind, now time.Time) (Export, error) {
	info, ok := Lookup(kind)
	if !ok {
		return Export{}, fmt.Errorf("%w: %q", ErrUnknownFormat, kind)
	}

	var (
		content []byte
		err     error
	)
	switch kind {
	case JSON:
		content, err = formatJSON(list)
	case Text:
		content = formatText(list)
	case Markdown:
		content = formatMarkdown(list)
	case PDF:
		content, err = formatPDF(list)
	}
	if err != nil {
		return Export{}, fmt.Errorf("formatting %s export: %w", kind, err)
	}

	return Export{
		Content:  content,
		Filename: fmt.Sprintf("notes-export-%d.%s", now.UnixMilli(), kind),
		MimeType: info.MimeType,
	}, nil
}

func formatJSON(list []notes.Note) ([]byte, error) {
	if list == nil {
		list = []notes.Note{}
	}
	return json.MarshalIndent(list, "", "  ")
}

func formatText(list []notes.Note) []byte {
	rule := strings.Repeat("=", ruleWidth)
	blocks := make([]string, len(list))
	for i, n := range list {
		blocks[i] = fmt.Sprintf("Title: %s\nDate: %s\n\n%s\n\n%s\n", n.Title, notes.FormatDate(n.Date), n.Content, rule)
	}
	return []byte(strings.Join(blocks, "\n"))
}

func formatMarkdown(list []notes.Note) []byte {
	blocks := make([]string, len(list))
	for i, n := range list {
		blocks[i] = fmt.Sprintf("# %s\n\n*%s*\n\n%s\n\n---\n", n.Title, notes.FormatDate(n.Date), n.Content)
	}
	return []byte(strings.Join(blocks, "\n"))
}

// formatPDF writes one page per note: title, date line, then the raw content.
func formatPDF(list []notes.Note) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Notes export", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if len(list) == 0 {
		pdf.AddPage()
	}
	for _, n := range list {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, tr(n.Title), "", "L", false)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr(notes.FormatDate(n.Date)), "", "L", false)
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, tr(n.Content), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseJSON reads a JSON export back into notes.
func ParseJSON(data []byte) ([]notes.Note, error) {
	var list []notes.Note
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing JSON export: %w", err)
	}
	return list, nil
}
