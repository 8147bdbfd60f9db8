package notes

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNoteExists is returned when a note file already exists at the target path.
var ErrNoteExists = errors.New("note already exists")

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a title into a kebab-case file name stem.
func Slug(title string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "note"
	}
	return s
}

// FileName returns the file name a note is written under. Notes without a date
// are named after now.
func FileName(n Note, now time.Time) string {
	date := n.Date
	if date.IsZero() {
		date = now
	}
	return date.Format("2006-01-02") + "-" + Slug(n.Title) + ".md"
}

// Marshal renders a note as frontmatter followed by its markdown content.
func Marshal(n Note) ([]byte, error) {
	fm := noteFrontmatter{
		ID:       n.ID,
		Title:    n.Title,
		Category: n.Category,
		Tags:     n.Tags,
	}
	if !n.Date.IsZero() {
		fm.Date = n.Date.Format(time.RFC3339)
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}
	return assemble(header, n.Content), nil
}

func assemble(header []byte, content string) []byte {
	var buf bytes.Buffer
	if len(header) > 0 {
		buf.WriteString("---\n")
		buf.Write(header)
		buf.WriteString("---\n\n")
	}
	buf.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// WriteNote writes n into dir and returns the file path. A missing ID is
// filled with a random uuid. Existing files are never overwritten, even when
// one appears while the note is being written.
func WriteNote(dir string, n Note, now time.Time) (string, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create notes dir: %w", err)
	}

	data, err := Marshal(n)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(n, now))
	tmp, err := writeTemp(path, data, 0644)
	if err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}
	defer os.Remove(tmp)

	// Link fails instead of replacing an existing target.
	if err := os.Link(tmp, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return path, fmt.Errorf("%s: %w", path, ErrNoteExists)
		}
		return "", fmt.Errorf("write note: %w", err)
	}
	return path, nil
}

// WriteFileAtomic writes data to a temp file next to path and renames it into place.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	tmp, err := writeTemp(path, data, perm)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// writeTemp writes data to a uniquely named hidden file in the directory of
// path and returns its name.
func writeTemp(path string, data []byte, perm fs.FileMode) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp."+filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()

	fail := func(err error) (string, error) {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		return fail(err)
	}
	if err := f.Chmod(perm); err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

// Rewrite writes the changes in n back to its own file. Only the frontmatter
// keys whose values differ from what the file currently holds are touched;
// other keys, their order and unparseable values stay as written. The note
// keeps its path even when the title or date changed.
func Rewrite(n Note) error {
	if n.FilePath == "" {
		return fmt.Errorf("note %q has no file", n.Title)
	}
	info, err := os.Stat(n.FilePath)
	if err != nil {
		return fmt.Errorf("rewrite note: %w", err)
	}
	content, err := os.ReadFile(n.FilePath)
	if err != nil {
		return fmt.Errorf("rewrite note: %w", err)
	}

	relPath := n.RelPath
	if relPath == "" {
		relPath = filepath.Base(n.FilePath)
	}
	cur := parseNote(content, n.FilePath, relPath, info.ModTime())
	fm, body := frontmatterNode(content)

	if n.Title != cur.Title {
		setKey(fm, "title", strNode(n.Title))
	}
	if n.Category != cur.Category {
		if n.Category == "" {
			deleteKey(fm, "category")
		} else {
			setKey(fm, "category", strNode(n.Category))
		}
	}
	if !slices.Equal(n.Tags, cur.Tags) {
		if len(n.Tags) == 0 {
			deleteKey(fm, "tags")
		} else {
			setKey(fm, "tags", tagsNode(fm, n.Tags))
		}
	}
	if !n.Date.IsZero() && !n.Date.Equal(cur.Date) {
		setKey(fm, "date", strNode(n.Date.Format(time.RFC3339)))
	}
	if n.Content != cur.Content {
		body = n.Content
	}

	var header []byte
	if len(fm.Content) > 0 {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(fm); err != nil {
			return fmt.Errorf("marshal frontmatter: %w", err)
		}
		enc.Close()
		header = buf.Bytes()
	}

	if err := WriteFileAtomic(n.FilePath, assemble(header, body), info.Mode().Perm()); err != nil {
		return fmt.Errorf("rewrite note: %w", err)
	}
	return nil
}

// frontmatterNode decodes the frontmatter of content into a mapping node. A
// file without a usable block yields an empty mapping and its whole content as
// body, matching how it parses.
func frontmatterNode(content []byte) (*yaml.Node, string) {
	empty := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	raw, body, ok := splitRaw(content)
	if !ok {
		return empty, string(content)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return empty, string(content)
	}
	if doc.Kind == 0 {
		return empty, body
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return empty, string(content)
	}
	return doc.Content[0], body
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// tagsNode builds the tags sequence, keeping the flow or block style of the
// existing one.
func tagsNode(fm *yaml.Node, tags []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if old := lookupKey(fm, "tags"); old != nil && old.Kind == yaml.SequenceNode {
		seq.Style = old.Style
	}
	for _, t := range tags {
		seq.Content = append(seq.Content, strNode(t))
	}
	return seq
}

func lookupKey(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func setKey(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, strNode(key), value)
}

func deleteKey(m *yaml.Node, key string) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return
		}
	}
}
