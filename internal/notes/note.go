package notes

import "time"

// DisplayDateLayout is the layout used when a date is shown to the user or
// written into a text export.
const DisplayDateLayout = "2006-01-02 15:04"

// Note represents a markdown note. A zero Date means the note had no usable date.
type Note struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Category string    `json:"category,omitempty"`
	Tags     []string  `json:"tags"`
	Date     time.Time `json:"date"`
	FilePath string    `json:"-"` // Absolute path to file
	RelPath  string    `json:"-"` // Path relative to scanned dir root (for display)
}

// HasDate reports whether the note carries a valid date.
func (n Note) HasDate() bool {
	return !n.Date.IsZero()
}

// FormatDate renders a note date for display.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}
	return t.Format(DisplayDateLayout)
}

// Clone returns a copy that shares no slices with n.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = append([]string(nil), n.Tags...)
	}
	return c
}
