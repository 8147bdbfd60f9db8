package search

import (
	"testing"
	"time"

	"jotter/internal/notes"
)

type recorder struct {
	calls int
	last  []notes.Note
}

func (r *recorder) record(list []notes.Note) {
	r.calls++
	r.last = list
}

func fixedClock() time.Time { return now }

func TestSession_InitialRun(t *testing.T) {
	rec := &recorder{}
	s := NewSession(makeNotes(), DefaultOptions(), fixedClock, rec.record)

	if rec.calls != 1 {
		t.Fatalf("expected one initial delivery, got %d", rec.calls)
	}
	if len(s.Results()) != 5 || s.Results()[0].Title != "Groceries" {
		t.Errorf("unexpected initial results %v", titles(s.Results()))
	}
}

func TestSession_OneDeliveryPerChange(t *testing.T) {
	rec := &recorder{}
	s := NewSession(makeNotes(), DefaultOptions(), fixedClock, rec.record)

	s.SetQuery("api")
	s.SetCategory("Work")
	s.SetDateRange(RangeMonth)
	s.SetSortBy(SortTitle)
	s.ToggleOrder()

	if rec.calls != 6 {
		t.Fatalf("expected 6 deliveries, got %d", rec.calls)
	}
	// desc was toggled to asc
	assertTitles(t, rec.last, "api design", "Standup")
}

func TestSession_UnchangedInputsDoNotRerun(t *testing.T) {
	rec := &recorder{}
	s := NewSession(makeNotes(), DefaultOptions(), fixedClock, rec.record)

	s.SetQuery("")
	s.SetCategory(CategoryAll)
	s.SetDateRange(RangeAll)
	s.SetSortBy(SortDate)
	s.SetOptions(DefaultOptions())
	s.Clear()

	if rec.calls != 1 {
		t.Errorf("expected no extra deliveries, got %d", rec.calls-1)
	}
}

func TestSession_SetNotesAlwaysRuns(t *testing.T) {
	rec := &recorder{}
	s := NewSession(nil, DefaultOptions(), fixedClock, rec.record)
	if len(rec.last) != 0 {
		t.Fatalf("expected empty results, got %d", len(rec.last))
	}

	s.SetNotes(makeNotes())
	if rec.calls != 2 || len(rec.last) != 5 {
		t.Errorf("expected rerun with 5 notes, got calls=%d len=%d", rec.calls, len(rec.last))
	}
}

func TestSession_Clear(t *testing.T) {
	rec := &recorder{}
	s := NewSession(makeNotes(), DefaultOptions(), fixedClock, rec.record)

	s.SetQuery("shop")
	s.SetCategory("Personal")
	if got := s.ActiveFilters(); len(got) != 2 {
		t.Fatalf("expected 2 chips, got %v", got)
	}

	s.Clear()
	if s.Query() != "" || s.Options() != DefaultOptions() {
		t.Errorf("clear should reset inputs, got %q %+v", s.Query(), s.Options())
	}
	if len(s.Results()) != 5 {
		t.Errorf("expected all notes after clear, got %d", len(s.Results()))
	}
	if rec.calls != 4 {
		t.Errorf("expected 4 deliveries, got %d", rec.calls)
	}
}

func TestSession_NilCallback(t *testing.T) {
	s := NewSession(makeNotes(), Options{}, nil, nil)
	s.SetQuery("diary")
	assertTitles(t, s.Results(), "Old journal")
}
