package notes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"jotter/internal/logs"
	"jotter/internal/scanner"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// noteNamespace seeds the deterministic ids of notes without an explicit id.
var noteNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("jotter:notes"))

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type noteFrontmatter struct {
	ID       string   `yaml:"id,omitempty"`
	Title    string   `yaml:"title,omitempty"`
	Category string   `yaml:"category,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Date     string   `yaml:"date,omitempty"`
}

// ParseNoteFile parses a markdown file as a Note.
//
// Title comes from frontmatter, then the first H1, then the filename. Date comes
// from frontmatter, then a YYYY-MM-DD in the filename, then the file mod time.
// A frontmatter date that does not parse leaves Date zero.
func ParseNoteFile(absPath, rootDir string) (Note, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		return Note{}, err
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return Note{}, err
	}

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	return parseNote(content, absPath, relPath, info.ModTime()), nil
}

func parseNote(content []byte, absPath, relPath string, modTime time.Time) Note {
	filename := filepath.Base(absPath)
	fm, body, hasFrontmatter := splitFrontmatter(content)

	note := Note{
		ID:       fm.ID,
		Title:    strings.TrimSpace(fm.Title),
		Content:  body,
		Category: strings.TrimSpace(fm.Category),
		Tags:     cleanTags(fm.Tags),
		FilePath: absPath,
		RelPath:  filepath.ToSlash(relPath),
	}

	switch {
	case hasFrontmatter && fm.Date != "":
		if parsed, ok := ParseDate(fm.Date); ok {
			note.Date = parsed
		} else {
			logs.Logger.Printf("Unparseable date %q in %s", fm.Date, absPath)
		}
	default:
		if match := datePattern.FindString(filename); match != "" {
			if parsed, err := time.ParseInLocation("2006-01-02", match, time.Local); err == nil {
				note.Date = parsed
				break
			}
		}
		note.Date = modTime
	}

	if note.Title == "" {
		note.Title = extractTitle(body)
	}
	if note.Title == "" {
		note.Title = titleFromFilename(filename)
	}
	if note.ID == "" {
		note.ID = uuid.NewSHA1(noteNamespace, []byte(note.RelPath)).String()
	}
	return note
}

// ParseDate accepts RFC3339 and the common date-only/date-time layouts. Layouts
// without a zone are read in local time.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ScanNotes loads every note under the configured directories. Unreadable
// files are logged and skipped.
func ScanNotes(dirs, recursiveDirs []string) []Note {
	scans, errs := scanner.ScanAll(dirs, recursiveDirs)
	for _, err := range errs {
		logs.Logger.Printf("Warning: could not scan notes dir: %v", err)
	}

	var all []Note
	seen := make(map[string]bool)
	for _, scan := range scans {
		for _, path := range scan.NotePaths {
			if seen[path] {
				continue
			}
			seen[path] = true

			note, err := ParseNoteFile(path, scan.RootDir)
			if err != nil {
				logs.Logger.Printf("Warning: could not parse note %s: %v", path, err)
				continue
			}
			all = append(all, note)
		}
	}
	return all
}

// splitFrontmatter separates a leading yaml block from the body. Content with a
// broken block is returned whole.
func splitFrontmatter(content []byte) (noteFrontmatter, string, bool) {
	raw, body, ok := splitRaw(content)
	if !ok {
		return noteFrontmatter{}, string(content), false
	}
	var fm noteFrontmatter
	if err := yaml.Unmarshal(raw, &fm); err != nil {
		return noteFrontmatter{}, string(content), false
	}
	return fm, body, true
}

// splitRaw returns the text between the --- fences and the body after them.
func splitRaw(content []byte) ([]byte, string, bool) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return nil, "", false
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return nil, "", false
	}

	raw := bytes.Join(lines[1:fmEnd], []byte("\n"))
	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))
	return raw, strings.TrimLeft(string(body), "\n"), true
}

func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "#"))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func extractTitle(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			if n.(*ast.Heading).Level == 1 {
				title = strings.TrimSpace(string(n.Text(source)))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	return title
}

func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	// Strip leading date pattern (e.g. "2026-02-14-")
	if loc := datePattern.FindStringIndex(name); loc != nil && loc[0] == 0 {
		after := strings.TrimPrefix(name[loc[1]:], "-")
		if after != "" {
			name = after
		}
	}

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")

	if strings.TrimSpace(name) == "" {
		return "Untitled Note"
	}

	return name
}

// String is used by list output and logs.
func (n Note) String() string {
	return fmt.Sprintf("%s (%s)", n.Title, FormatDate(n.Date))
}
