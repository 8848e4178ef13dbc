package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
	"github.com/prodipto2001/journal-stitch/pkg/profile"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p, base
}

func TestEntriesRoundTrip(t *testing.T) {
	p, _ := load(t)

	list := []entry.Entry{
		{ID: 2, Title: "Second", Badges: []entry.Badge{{Label: "Journal"}}},
		{ID: 1, Title: "First", Badges: []entry.Badge{}},
	}
	p.SaveEntries(list)

	got := p.LoadEntries()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ID != 2 || got[0].Title != "Second" {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestLoadEntriesMissingKey(t *testing.T) {
	p, _ := load(t)
	if got := p.LoadEntries(); len(got) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(got))
	}
}

func TestLoadEntriesCorruptValue(t *testing.T) {
	p, base := load(t)
	if err := os.WriteFile(filepath.Join(base, "entries"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	if got := p.LoadEntries(); len(got) != 0 {
		t.Fatalf("expected empty list for corrupt value, got %d", len(got))
	}
}

func TestLoadEntriesSanitation(t *testing.T) {
	p, base := load(t)
	raw := `[
		{"id": 10, "title": "kept"},
		{"title": "no id"},
		{"id": "nan", "title": "string id"},
		{"id": 20, "title": "kept too", "badges": [{"label":"Gym","icon":"","tone":"green"}]}
	]`
	if err := os.WriteFile(filepath.Join(base, "entries"), []byte(raw), 0o644); err != nil {
		t.Fatalf("seed entries: %v", err)
	}

	got := p.LoadEntries()
	if len(got) != 2 {
		t.Fatalf("expected 2 sanitized entries, got %d: %+v", len(got), got)
	}
	if got[0].ID != 10 || got[1].ID != 20 {
		t.Fatalf("unexpected ids: %+v", got)
	}
	if got[0].Badges == nil || len(got[0].Badges) != 0 {
		t.Fatalf("expected missing badges defaulted to empty list, got %#v", got[0].Badges)
	}
	if len(got[1].Badges) != 1 || got[1].Badges[0].Label != "Gym" {
		t.Fatalf("badges not preserved: %+v", got[1].Badges)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	p, _ := load(t)

	if got := p.LoadProfile(); got != nil {
		t.Fatalf("expected nil profile before save, got %+v", got)
	}

	p.SaveProfile(&profile.Profile{Name: "Ada", Gender: profile.Female})
	got := p.LoadProfile()
	if got == nil || got.Name != "Ada" || got.Gender != profile.Female {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestLoadProfileWrongShape(t *testing.T) {
	p, base := load(t)
	if err := os.WriteFile(filepath.Join(base, "profile"), []byte(`{"unexpected": true}`), 0o644); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if got := p.LoadProfile(); got != nil {
		t.Fatalf("expected nil profile for wrong shape, got %+v", got)
	}
}
