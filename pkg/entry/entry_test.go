package entry

import (
	"testing"
	"time"
)

func TestDateLabelRoundTrip(t *testing.T) {
	day := time.Date(2024, time.January, 5, 14, 30, 0, 0, time.Local)
	label := FormatDate(day)
	if label != "January 5, 2024" {
		t.Fatalf("unexpected label: %s", label)
	}

	parsed, err := ParseDate(label)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !SameDay(parsed, day) {
		t.Fatalf("expected %v and %v to share a day", parsed, day)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("sometime last week"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDayUnparseableLabel(t *testing.T) {
	e := &Entry{DateLabel: "not a date"}
	if _, ok := e.Day(); ok {
		t.Fatalf("expected no day for unparseable label")
	}
}

func TestDateKey(t *testing.T) {
	day := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.Local)
	if got := DateKey(day); got != "2024-02-10" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestPreview(t *testing.T) {
	e := &Entry{Content: "  first line \nsecond line"}
	if got := e.Preview(); got != "first line" {
		t.Fatalf("unexpected preview: %q", got)
	}
}

func TestBadgeLabels(t *testing.T) {
	e := &Entry{Badges: []Badge{{Label: "Gym"}, {Label: "Journal"}}}
	got := e.BadgeLabels()
	if len(got) != 2 || got[0] != "Gym" || got[1] != "Journal" {
		t.Fatalf("unexpected labels: %v", got)
	}
}
