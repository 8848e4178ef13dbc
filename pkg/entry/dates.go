package entry

import "time"

const (
	// LayoutLabel is the human display layout used for Entry.DateLabel.
	LayoutLabel = "January 2, 2006"

	// LayoutKey is the canonical year-month-day key used for calendar
	// indexing and date equality.
	LayoutKey = "2006-01-02"
)

// FormatDate renders a timestamp as a display date label.
func FormatDate(t time.Time) string {
	return t.Local().Format(LayoutLabel)
}

// ParseDate parses a display date label back to a calendar day in local time.
// A label that fails to parse excludes its entry from date filtering and
// calendar indexing, but not from search.
func ParseDate(label string) (time.Time, error) {
	return time.ParseInLocation(LayoutLabel, label, time.Local)
}

// DateKey returns the canonical date key for a timestamp.
func DateKey(t time.Time) string {
	return t.Local().Format(LayoutKey)
}

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Day returns the local day an entry belongs to, or ok=false when the label
// cannot be parsed.
func (e *Entry) Day() (time.Time, bool) {
	t, err := ParseDate(e.DateLabel)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
