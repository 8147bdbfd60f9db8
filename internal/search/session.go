package search

import (
	"time"

	"jotter/internal/notes"
)

// Session holds the inputs of a search panel and re-runs the pipeline whenever
// one of them changes, delivering each result to onResults exactly once.
// Setting an input to its current value does not re-run the pipeline.
type Session struct {
	notes     []notes.Note
	query     string
	opts      Options
	clock     func() time.Time
	onResults func([]notes.Note)
	results   []notes.Note
}

// NewSession creates a session and delivers the initial result. A nil clock
// uses time.Now.
func NewSession(all []notes.Note, opts Options, clock func() time.Time, onResults func([]notes.Note)) *Session {
	if clock == nil {
		clock = time.Now
	}
	s := &Session{
		notes:     all,
		opts:      opts,
		clock:     clock,
		onResults: onResults,
	}
	s.run()
	return s
}

func (s *Session) run() {
	s.results = Apply(s.notes, s.query, s.opts, s.clock())
	if s.onResults != nil {
		s.onResults(s.results)
	}
}

// SetNotes replaces the note list.
func (s *Session) SetNotes(all []notes.Note) {
	s.notes = all
	s.run()
}

// SetQuery updates the free-text query.
func (s *Session) SetQuery(query string) {
	if query == s.query {
		return
	}
	s.query = query
	s.run()
}

// SetOptions replaces all filter and sort options.
func (s *Session) SetOptions(opts Options) {
	if opts == s.opts {
		return
	}
	s.opts = opts
	s.run()
}

// SetCategory updates the category filter.
func (s *Session) SetCategory(category string) {
	opts := s.opts
	opts.Category = category
	s.SetOptions(opts)
}

// SetDateRange updates the date range filter.
func (s *Session) SetDateRange(r DateRange) {
	opts := s.opts
	opts.DateRange = r
	s.SetOptions(opts)
}

// SetSortBy updates the sort field.
func (s *Session) SetSortBy(field SortField) {
	opts := s.opts
	opts.SortBy = field
	s.SetOptions(opts)
}

// ToggleOrder flips the sort direction.
func (s *Session) ToggleOrder() {
	opts := s.opts
	opts.SortOrder = opts.SortOrder.Toggle()
	s.SetOptions(opts)
}

// Clear resets the query and options to the defaults.
func (s *Session) Clear() {
	def := DefaultOptions()
	if s.query == "" && s.opts == def {
		return
	}
	s.query = ""
	s.opts = def
	s.run()
}

// Query returns the current query.
func (s *Session) Query() string { return s.query }

// Options returns the current options.
func (s *Session) Options() Options { return s.opts }

// Results returns the last delivered result.
func (s *Session) Results() []notes.Note { return s.results }

// ActiveFilters returns display chips for the session's active filters.
func (s *Session) ActiveFilters() []string {
	return ActiveFilters(s.query, s.opts)
}
