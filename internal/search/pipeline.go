package search

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"jotter/internal/notes"
)

// Apply filters notes by query, category and date range, then sorts them.
//
// The query is a case-insensitive substring matched against title, content and
// tags; a blank query keeps everything. Notes without a valid date are dropped
// by any date range other than "all" and sort last on date sorts in either
// direction. An unknown sort field keeps input order. The input slice is not
// modified.
func Apply(all []notes.Note, query string, opts Options, now time.Time) []notes.Note {
	out := make([]notes.Note, 0, len(all))

	cutoff, byDate := Cutoff(opts.DateRange, now)
	byCategory := opts.Category != "" && opts.Category != CategoryAll

	for _, n := range all {
		if !Matches(n, query) {
			continue
		}
		if byCategory && n.Category != opts.Category {
			continue
		}
		if byDate && (!n.HasDate() || n.Date.Before(cutoff)) {
			continue
		}
		out = append(out, n)
	}

	Sort(out, opts.SortBy, opts.SortOrder)
	return out
}

// Matches reports whether n matches the free-text query.
func Matches(n notes.Note, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Sort orders notes in place, stably. Any order other than Asc sorts descending.
func Sort(list []notes.Note, field SortField, order SortOrder) {
	compare := comparator(field)
	if compare == nil {
		return
	}
	desc := order != Asc

	slices.SortStableFunc(list, func(a, b notes.Note) int {
		if field == SortDate && (!a.HasDate() || !b.HasDate()) {
			return undatedLast(a, b)
		}
		c := compare(a, b)
		if desc {
			return -c
		}
		return c
	})
}

func comparator(field SortField) func(a, b notes.Note) int {
	switch field {
	case SortDate:
		return func(a, b notes.Note) int { return a.Date.Compare(b.Date) }
	case SortTitle:
		return func(a, b notes.Note) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortCategory:
		return func(a, b notes.Note) int {
			return cmp.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
		}
	default:
		return nil
	}
}

func undatedLast(a, b notes.Note) int {
	switch {
	case a.HasDate() == b.HasDate():
		return 0
	case !a.HasDate():
		return 1
	default:
		return -1
	}
}

// HasActiveFilters reports whether anything narrows the result set. Sorting
// does not count.
func HasActiveFilters(query string, opts Options) bool {
	return strings.TrimSpace(query) != "" ||
		(opts.Category != "" && opts.Category != CategoryAll) ||
		(opts.DateRange != "" && opts.DateRange != RangeAll)
}

// ActiveFilters returns display chips for the active filters.
func ActiveFilters(query string, opts Options) []string {
	var chips []string
	if strings.TrimSpace(query) != "" {
		chips = append(chips, fmt.Sprintf("Search: %q", query))
	}
	if opts.Category != "" && opts.Category != CategoryAll {
		chips = append(chips, "Category: "+opts.Category)
	}
	if opts.DateRange != "" && opts.DateRange != RangeAll {
		chips = append(chips, opts.DateRange.Label())
	}
	return chips
}
