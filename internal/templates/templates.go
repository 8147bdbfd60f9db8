package templates

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
	"time"

	"github.com/sahilm/fuzzy"

	"jotter/internal/notes"
)

//go:embed content/*.md
var content embed.FS

const (
	// dates and times are rendered the way en-US locales print them
	dateLayout = "1/2/2006"
	timeLayout = "3:04:05 PM"
)

// Template is a starting point for a new note.
type Template struct {
	ID       string
	Name     string
	Category string
	Title    string
	Content  string
}

type builtin struct {
	id       string
	name     string
	category string
	title    string
	head     *template.Template
	body     *template.Template
}

type fields struct {
	Date string
	Time string
}

var builtins = []builtin{
	{id: "blank", name: "Blank Note", category: "Basic", title: "Untitled Note"},
	{id: "todo", name: "To-Do List", category: "Productivity", title: "To-Do List"},
	{id: "meeting", name: "Meeting Notes", category: "Work", title: "Meeting Notes"},
	{id: "project", name: "Project Plan", category: "Work", title: "Project Plan"},
	{id: "code-snippet", name: "Code Snippet", category: "Development", title: "Code Snippet"},
	{id: "study", name: "Study Notes", category: "Education", title: "Study Notes"},
	{id: "journal", name: "Daily Journal", category: "Personal", title: "Journal - {{.Date}}"},
	{id: "shopping", name: "Shopping List", category: "Personal", title: "Shopping List"},
	{id: "brainstorm", name: "Brainstorm", category: "Ideas", title: "Brainstorming Session"},
}

func init() {
	for i := range builtins {
		b := &builtins[i]
		data, err := content.ReadFile("content/" + b.id + ".md")
		if err != nil {
			panic(err)
		}
		body := strings.TrimSuffix(string(data), "\n")
		b.head = template.Must(template.New(b.id + "-title").Parse(b.title))
		b.body = template.Must(template.New(b.id).Parse(body))
	}
}

func (b builtin) render(now time.Time) Template {
	f := fields{Date: now.Format(dateLayout), Time: now.Format(timeLayout)}
	return Template{
		ID:       b.id,
		Name:     b.name,
		Category: b.category,
		Title:    expand(b.head, f),
		Content:  expand(b.body, f),
	}
}

func expand(t *template.Template, f fields) string {
	var buf bytes.Buffer
	// fields only carries strings, execution cannot fail
	_ = t.Execute(&buf, f)
	return buf.String()
}

// Catalog returns every built-in template with dates filled in from now.
func Catalog(now time.Time) []Template {
	out := make([]Template, len(builtins))
	for i, b := range builtins {
		out[i] = b.render(now)
	}
	return out
}

// Get returns the template with the given id.
func Get(id string, now time.Time) (Template, bool) {
	for _, b := range builtins {
		if b.id == id {
			return b.render(now), true
		}
	}
	return Template{}, false
}

// IDs lists the template ids in catalog order.
func IDs() []string {
	ids := make([]string, len(builtins))
	for i, b := range builtins {
		ids[i] = b.id
	}
	return ids
}

// Categories lists the distinct template categories in first-seen order.
func Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, b := range builtins {
		if !seen[b.category] {
			seen[b.category] = true
			cats = append(cats, b.category)
		}
	}
	return cats
}

// ByCategory returns the templates in category; "all" or "" returns the
// whole catalog.
func ByCategory(category string, now time.Time) []Template {
	all := Catalog(now)
	if category == "" || category == "all" {
		return all
	}
	var out []Template
	for _, t := range all {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Search fuzzy-matches query against template names, best match first. An
// empty query returns the whole catalog.
func Search(query string, now time.Time) []Template {
	all := Catalog(now)
	if strings.TrimSpace(query) == "" {
		return all
	}
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	matches := fuzzy.Find(query, names)
	out := make([]Template, len(matches))
	for i, match := range matches {
		out[i] = all[match.Index]
	}
	return out
}

// NewNote creates an unsaved note from the template, dated now.
func (t Template) NewNote(now time.Time) notes.Note {
	return notes.Note{
		Title:   t.Title,
		Content: t.Content,
		Tags:    []string{},
		Date:    now,
	}
}
