// Package browse derives filtered and calendar views from the entry list.
// Everything here is a pure function of its inputs.
package browse

import (
	"strings"
	"time"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
)

// Filter returns the entries passing both the date filter and the text
// filter, preserving order. A nil date passes everything; an entry whose date
// label does not parse is excluded whenever a date is selected. The query is
// a case-insensitive substring match on title, content, or any badge label.
func Filter(entries []entry.Entry, query string, on *time.Time) []entry.Entry {
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if !onDay(&e, on) {
			continue
		}
		if !Matches(&e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Matches reports whether the entry matches the free-text query. An empty
// query matches everything.
func Matches(e *entry.Entry, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Content), q) {
		return true
	}
	for _, b := range e.Badges {
		if strings.Contains(strings.ToLower(b.Label), q) {
			return true
		}
	}
	return false
}

// CalendarIndex maps date keys to the number of entries on that day, used to
// mark populated days. Entries with unparseable labels are skipped.
func CalendarIndex(entries []entry.Entry) map[string]int {
	index := make(map[string]int)
	for _, e := range entries {
		day, ok := e.Day()
		if !ok {
			continue
		}
		index[entry.DateKey(day)]++
	}
	return index
}

func onDay(e *entry.Entry, on *time.Time) bool {
	if on == nil {
		return true
	}
	day, ok := e.Day()
	if !ok {
		return false
	}
	return entry.SameDay(day, *on)
}
