package search

import (
	"fmt"
	"time"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// DateRange selects how far back the date filter reaches.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
	RangeYear  DateRange = "year"
)

// SortField selects the sort key. The zero value keeps input order.
type SortField string

const (
	SortNone     SortField = ""
	SortDate     SortField = "date"
	SortTitle    SortField = "title"
	SortCategory SortField = "category"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Options are the filter and sort settings of the pipeline. The zero value
// filters nothing and keeps input order.
type Options struct {
	Category  string
	DateRange DateRange
	SortBy    SortField
	SortOrder SortOrder
}

// DefaultOptions returns the settings a fresh search panel starts with.
func DefaultOptions() Options {
	return Options{
		Category:  CategoryAll,
		DateRange: RangeAll,
		SortBy:    SortDate,
		SortOrder: Desc,
	}
}

// Choice is a selectable value with its label.
type Choice[T ~string] struct {
	ID    T
	Label string
}

var dateRanges = []Choice[DateRange]{
	{RangeAll, "All Time"},
	{RangeToday, "Today"},
	{RangeWeek, "This Week"},
	{RangeMonth, "This Month"},
	{RangeYear, "This Year"},
}

var sortFields = []Choice[SortField]{
	{SortDate, "Date Modified"},
	{SortTitle, "Title"},
	{SortCategory, "Category"},
}

// DateRanges lists the selectable date ranges in display order.
func DateRanges() []Choice[DateRange] {
	return append([]Choice[DateRange](nil), dateRanges...)
}

// SortFields lists the selectable sort fields in display order.
func SortFields() []Choice[SortField] {
	return append([]Choice[SortField](nil), sortFields...)
}

// Label returns the display label of a date range, or the raw value.
func (r DateRange) Label() string {
	for _, c := range dateRanges {
		if c.ID == r {
			return c.Label
		}
	}
	return string(r)
}

// Label returns the display label of a sort field, or the raw value.
func (f SortField) Label() string {
	for _, c := range sortFields {
		if c.ID == f {
			return c.Label
		}
	}
	if f == SortNone {
		return "None"
	}
	return string(f)
}

// Toggle flips the direction.
func (o SortOrder) Toggle() SortOrder {
	if o == Asc {
		return Desc
	}
	return Asc
}

// Normalize replaces unknown values with the defaults. The pipeline itself
// tolerates unknown values; the UI normalizes so its cycles stay on known values.
func (o Options) Normalize() Options {
	def := DefaultOptions()
	if o.Category == "" {
		o.Category = def.Category
	}
	if !knownRange(o.DateRange) {
		o.DateRange = def.DateRange
	}
	if !knownField(o.SortBy) {
		o.SortBy = def.SortBy
	}
	if o.SortOrder != Asc && o.SortOrder != Desc {
		o.SortOrder = def.SortOrder
	}
	return o
}

// Validate reports unknown values. Used by the CLI to reject bad flags.
func (o Options) Validate() error {
	if o.DateRange != "" && !knownRange(o.DateRange) {
		return fmt.Errorf("unknown date range %q (want all, today, week, month, year)", o.DateRange)
	}
	if o.SortBy != SortNone && !knownField(o.SortBy) {
		return fmt.Errorf("unknown sort field %q (want date, title, category)", o.SortBy)
	}
	if o.SortOrder != "" && o.SortOrder != Asc && o.SortOrder != Desc {
		return fmt.Errorf("unknown sort order %q (want asc, desc)", o.SortOrder)
	}
	return nil
}

// NextDateRange cycles to the next date range.
func NextDateRange(r DateRange) DateRange {
	for i, c := range dateRanges {
		if c.ID == r {
			return dateRanges[(i+1)%len(dateRanges)].ID
		}
	}
	return dateRanges[0].ID
}

// NextSortField cycles to the next sort field.
func NextSortField(f SortField) SortField {
	for i, c := range sortFields {
		if c.ID == f {
			return sortFields[(i+1)%len(sortFields)].ID
		}
	}
	return sortFields[0].ID
}

// Cutoff returns the earliest date kept by r relative to now. ok is false when
// r does not filter.
func Cutoff(r DateRange, now time.Time) (cutoff time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeToday:
		return today, true
	case RangeWeek:
		return today.AddDate(0, 0, -7), true
	case RangeMonth:
		return today.AddDate(0, -1, 0), true
	case RangeYear:
		return today.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func knownRange(r DateRange) bool {
	for _, c := range dateRanges {
		if c.ID == r {
			return true
		}
	}
	return false
}

func knownField(f SortField) bool {
	for _, c := range sortFields {
		if c.ID == f {
			return true
		}
	}
	return false
}
