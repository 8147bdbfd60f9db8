package search

import (
	"testing"
	"time"

	"jotter/internal/notes"
)

var now = time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func titles(list []notes.Note) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.Title
	}
	return out
}

func assertTitles(t *testing.T, got []notes.Note, want ...string) {
	t.Helper()
	g := titles(got)
	if len(g) != len(want) {
		t.Fatalf("expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, g)
		}
	}
}

func makeNotes() []notes.Note {
	return []notes.Note{
		{ID: "1", Title: "Groceries", Content: "milk, eggs", Category: "Personal", Tags: []string{"shopping"}, Date: date(2024, 6, 15)},
		{ID: "2", Title: "Standup", Content: "Talked about the API", Category: "Work", Date: date(2024, 6, 10)},
		{ID: "3", Title: "api design", Content: "REST vs gRPC", Category: "Work", Tags: []string{"Architecture"}, Date: date(2024, 5, 20)},
		{ID: "4", Title: "Old journal", Content: "Dear diary", Date: date(2023, 1, 1)},
		{ID: "5", Title: "Undated", Content: "no date", Category: "work"},
	}
}

func TestApply_AlphaBetaExample(t *testing.T) {
	list := []notes.Note{
		{Title: "Alpha", Date: date(2024, 1, 1)},
		{Title: "Beta", Date: date(2024, 6, 1)},
	}

	asc := Apply(list, "", Options{SortBy: SortDate, SortOrder: Asc}, now)
	assertTitles(t, asc, "Alpha", "Beta")

	desc := Apply(list, "", Options{SortBy: SortDate, SortOrder: Desc}, now)
	assertTitles(t, desc, "Beta", "Alpha")
}

func TestApply_TextMatch(t *testing.T) {
	list := makeNotes()

	// title, content and tag matches, case-insensitive
	assertTitles(t, Apply(list, "API", Options{}, now), "Standup", "api design")
	assertTitles(t, Apply(list, "SHOP", Options{}, now), "Groceries")
	assertTitles(t, Apply(list, "architecture", Options{}, now), "api design")
	assertTitles(t, Apply(list, "nothing matches", Options{}, now))
}

func TestApply_BlankQueryKeepsAll(t *testing.T) {
	list := makeNotes()
	if got := Apply(list, "   \t", Options{}, now); len(got) != len(list) {
		t.Errorf("expected %d notes, got %d", len(list), len(got))
	}
}

func TestApply_CategoryIsExact(t *testing.T) {
	list := makeNotes()

	assertTitles(t, Apply(list, "", Options{Category: "Work"}, now), "Standup", "api design")
	assertTitles(t, Apply(list, "", Options{Category: "work"}, now), "Undated")
	if got := Apply(list, "", Options{Category: CategoryAll}, now); len(got) != len(list) {
		t.Errorf("category all should keep everything, got %d", len(got))
	}
}

func TestApply_DateRanges(t *testing.T) {
	list := makeNotes()

	assertTitles(t, Apply(list, "", Options{DateRange: RangeToday}, now), "Groceries")
	assertTitles(t, Apply(list, "", Options{DateRange: RangeWeek}, now), "Groceries", "Standup")
	assertTitles(t, Apply(list, "", Options{DateRange: RangeMonth}, now), "Groceries", "Standup", "api design")
	assertTitles(t, Apply(list, "", Options{DateRange: RangeYear}, now), "Groceries", "Standup", "api design")
	if got := Apply(list, "", Options{DateRange: RangeAll}, now); len(got) != 5 {
		t.Errorf("range all should keep undated notes, got %d", len(got))
	}
	if got := Apply(list, "", Options{DateRange: "fortnight"}, now); len(got) != 5 {
		t.Errorf("unknown range should not filter, got %d", len(got))
	}
}

func TestApply_WeekBoundaryIsInclusive(t *testing.T) {
	list := []notes.Note{
		{Title: "edge", Date: date(2024, 6, 8)},
		{Title: "before", Date: date(2024, 6, 8).Add(-time.Second)},
	}
	assertTitles(t, Apply(list, "", Options{DateRange: RangeWeek}, now), "edge")
}

func TestApply_UndatedSortsLast(t *testing.T) {
	list := makeNotes()

	asc := Apply(list, "", Options{SortBy: SortDate, SortOrder: Asc}, now)
	assertTitles(t, asc, "Old journal", "api design", "Standup", "Groceries", "Undated")

	desc := Apply(list, "", Options{SortBy: SortDate, SortOrder: Desc}, now)
	assertTitles(t, desc, "Groceries", "Standup", "api design", "Old journal", "Undated")
}

func TestApply_TitleSortIgnoresCase(t *testing.T) {
	list := makeNotes()
	got := Apply(list, "", Options{SortBy: SortTitle, SortOrder: Asc}, now)
	assertTitles(t, got, "api design", "Groceries", "Old journal", "Standup", "Undated")
}

func TestApply_CategorySortIsStable(t *testing.T) {
	list := makeNotes()

	asc := Apply(list, "", Options{SortBy: SortCategory, SortOrder: Asc}, now)
	// "" < personal < work; the three work notes keep input order
	assertTitles(t, asc, "Old journal", "Groceries", "Standup", "api design", "Undated")

	desc := Apply(list, "", Options{SortBy: SortCategory, SortOrder: Desc}, now)
	assertTitles(t, desc, "Standup", "api design", "Undated", "Groceries", "Old journal")
}

func TestApply_UnknownSortFieldKeepsOrder(t *testing.T) {
	list := makeNotes()
	got := Apply(list, "", Options{SortBy: "priority", SortOrder: Asc}, now)
	assertTitles(t, got, titles(list)...)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	list := makeNotes()
	before := titles(list)
	Apply(list, "", Options{SortBy: SortTitle, SortOrder: Desc}, now)
	for i, title := range titles(list) {
		if title != before[i] {
			t.Fatalf("input reordered: %v", titles(list))
		}
	}
}

func TestCutoff(t *testing.T) {
	cases := []struct {
		r    DateRange
		want time.Time
	}{
		{RangeToday, date(2024, 6, 15)},
		{RangeWeek, date(2024, 6, 8)},
		{RangeMonth, date(2024, 5, 15)},
		{RangeYear, date(2023, 6, 15)},
	}
	for _, c := range cases {
		got, ok := Cutoff(c.r, now)
		if !ok || !got.Equal(c.want) {
			t.Errorf("Cutoff(%s) = %v, %v; want %v", c.r, got, ok, c.want)
		}
	}
	if _, ok := Cutoff(RangeAll, now); ok {
		t.Error("range all should not produce a cutoff")
	}
}

func TestActiveFilters(t *testing.T) {
	if HasActiveFilters("", DefaultOptions()) {
		t.Error("defaults should not count as active")
	}
	opts := DefaultOptions()
	opts.Category = "Work"
	opts.DateRange = RangeWeek
	chips := ActiveFilters("api", opts)
	if len(chips) != 3 || chips[0] != `Search: "api"` || chips[1] != "Category: Work" || chips[2] != "This Week" {
		t.Errorf("unexpected chips %v", chips)
	}
}

func TestOptions_NormalizeAndValidate(t *testing.T) {
	o := Options{DateRange: "bogus", SortBy: "bogus", SortOrder: "sideways"}.Normalize()
	if o != DefaultOptions() {
		t.Errorf("expected defaults, got %+v", o)
	}
	if err := (Options{SortBy: "bogus"}).Validate(); err == nil {
		t.Error("expected error for unknown sort field")
	}
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCycles(t *testing.T) {
	if NextDateRange(RangeYear) != RangeAll {
		t.Error("date range cycle should wrap")
	}
	if NextSortField(SortDate) != SortTitle {
		t.Error("expected title after date")
	}
	if Desc.Toggle() != Asc || Asc.Toggle() != Desc {
		t.Error("toggle should flip direction")
	}
}
