package categories

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"jotter/internal/notes"
)

// DefaultMax is the selection limit used when none is configured.
const DefaultMax = 5

var ErrLimitReached = errors.New("category limit reached")

// Picker holds a category catalog and a bounded selection drawn from it.
// All operations mutate the picker in place and never fail except for
// selection past the limit.
type Picker struct {
	catalog  []string
	selected []string
	max      int
}

// New creates a picker over catalog. Selected names missing from the catalog
// are dropped; a limit of zero or less means DefaultMax.
func New(catalog, selected []string, limit int) *Picker {
	if limit <= 0 {
		limit = DefaultMax
	}
	p := &Picker{max: limit}
	for _, c := range catalog {
		p.Add(c)
	}
	for _, s := range selected {
		_ = p.Select(s)
	}
	return p
}

// Add appends name to the catalog. Blank and duplicate names are ignored.
// It reports whether the catalog changed.
func (p *Picker) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(p.catalog, name) {
		return false
	}
	p.catalog = append(p.catalog, name)
	return true
}

// Select adds name to the selection. Unknown or already selected names are
// ignored; selecting past the limit returns ErrLimitReached.
func (p *Picker) Select(name string) error {
	if !slices.Contains(p.catalog, name) || p.IsSelected(name) {
		return nil
	}
	if !p.CanAddMore() {
		return fmt.Errorf("%w: %d of %d selected", ErrLimitReached, len(p.selected), p.max)
	}
	p.selected = append(p.selected, name)
	return nil
}

// Remove drops name from the selection.
func (p *Picker) Remove(name string) {
	p.selected = slices.DeleteFunc(p.selected, func(s string) bool { return s == name })
}

// Toggle deselects a selected name, otherwise selects it while there is room.
// A full selection leaves unselected names untouched.
func (p *Picker) Toggle(name string) {
	if p.IsSelected(name) {
		p.Remove(name)
		return
	}
	if p.CanAddMore() {
		_ = p.Select(name)
	}
}

func (p *Picker) CanAddMore() bool {
	return len(p.selected) < p.max
}

func (p *Picker) IsSelected(name string) bool {
	return slices.Contains(p.selected, name)
}

// Selected returns the selection in selection order.
func (p *Picker) Selected() []string {
	return slices.Clone(p.selected)
}

// Catalog returns the catalog in insertion order.
func (p *Picker) Catalog() []string {
	return slices.Clone(p.catalog)
}

func (p *Picker) Max() int {
	return p.max
}

// Status renders the selection count, e.g. "(2/5)".
func (p *Picker) Status() string {
	return fmt.Sprintf("(%d/%d)", len(p.selected), p.max)
}

// Filter fuzzy-matches query against the catalog, best match first. An empty
// query returns the whole catalog.
func (p *Picker) Filter(query string) []string {
	if query == "" {
		return p.Catalog()
	}
	matches := fuzzy.Find(query, p.catalog)
	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = match.Str
	}
	return out
}

// HasExact reports whether query names a catalog entry, ignoring case and
// surrounding space.
func (p *Picker) HasExact(query string) bool {
	normalized := strings.ToLower(strings.TrimSpace(query))
	for _, c := range p.catalog {
		if strings.ToLower(c) == normalized {
			return true
		}
	}
	return false
}

// FromNotes collects the categories used by list plus extra, sorted and
// without duplicates.
func FromNotes(list []notes.Note, extra []string) []string {
	return collect(list, extra, false)
}

// Labels is FromNotes plus every tag in list. It is the catalog a note's tag
// selection is drawn from.
func Labels(list []notes.Note, extra []string) []string {
	return collect(list, extra, true)
}

func collect(list []notes.Note, extra []string, withTags bool) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}
	for _, n := range list {
		add(n.Category)
		if withTags {
			for _, tag := range n.Tags {
				add(tag)
			}
		}
	}
	for _, c := range extra {
		add(c)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}
