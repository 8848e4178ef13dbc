package journal

import (
	"context"
	"sync"
	"testing"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
	"github.com/prodipto2001/journal-stitch/pkg/profile"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	entries []entry.Entry
	saves   int
}

func (m *memoryPersistence) LoadProfile() *profile.Profile  { return nil }
func (m *memoryPersistence) SaveProfile(*profile.Profile)   {}

func (m *memoryPersistence) LoadEntries() []entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entry.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *memoryPersistence) SaveEntries(list []entry.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = list
	m.saves++
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func (m *memoryPersistence) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func TestAppendNewestFirst(t *testing.T) {
	s := Load(&memoryPersistence{})

	first := s.Append(entry.Entry{Title: "first"})
	second := s.Append(entry.Entry{Title: "second"})
	third := s.Append(entry.Entry{Title: "third"})

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	if all[0].ID != third.ID || all[1].ID != second.ID || all[2].ID != first.ID {
		t.Fatalf("entries not in reverse-chronological order: %+v", all)
	}
}

func TestAppendAssignsUniqueIDs(t *testing.T) {
	s := Load(&memoryPersistence{})

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		e := s.Append(entry.Entry{Title: "x"})
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestAppendPersistsWriteThrough(t *testing.T) {
	mp := &memoryPersistence{}
	s := Load(mp)

	s.Append(entry.Entry{Title: "a"})
	s.Append(entry.Entry{Title: "b"})

	if mp.saveCount() != 2 {
		t.Fatalf("expected 2 persists, got %d", mp.saveCount())
	}
	if len(mp.LoadEntries()) != 2 {
		t.Fatalf("expected 2 persisted entries")
	}
}

func TestUpdatePatchesTitleAndContentOnly(t *testing.T) {
	s := Load(&memoryPersistence{})
	e := s.Append(entry.Entry{
		Title:   "before",
		Content: "body",
		Badges:  []entry.Badge{{Label: "Journal"}},
		Notes:   []entry.Note{{Text: "note", X: 1, Y: 2}},
		Sticker: &entry.Sticker{Label: "Auto"},
	})

	title := "after"
	if !s.Update(e.ID, Patch{Title: &title}) {
		t.Fatalf("expected update to find the entry")
	}

	got := s.All()[0]
	if got.Title != "after" || got.Content != "body" {
		t.Fatalf("unexpected patch result: %+v", got)
	}
	if len(got.Badges) != 1 || len(got.Notes) != 1 || got.Sticker == nil {
		t.Fatalf("update touched fields outside the patch: %+v", got)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	mp := &memoryPersistence{}
	s := Load(mp)
	s.Append(entry.Entry{Title: "only"})
	before := mp.saveCount()

	title := "nope"
	if s.Update(42, Patch{Title: &title}) {
		t.Fatalf("expected no entry found")
	}
	if mp.saveCount() != before {
		t.Fatalf("no-op update must not persist")
	}
	if s.All()[0].Title != "only" {
		t.Fatalf("store changed by no-op update")
	}
}

func TestLoadSeedsIDClock(t *testing.T) {
	mp := &memoryPersistence{entries: []entry.Entry{{ID: 9_999_999_999_999, Title: "future"}}}
	s := Load(mp)
	e := s.Append(entry.Entry{Title: "next"})
	if e.ID <= 9_999_999_999_999 {
		t.Fatalf("id clock not seeded past persisted ids: %d", e.ID)
	}
}

func TestResetClears(t *testing.T) {
	mp := &memoryPersistence{}
	s := Load(mp)
	s.Append(entry.Entry{Title: "gone"})
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("expected empty store after reset")
	}
	if len(mp.LoadEntries()) != 0 {
		t.Fatalf("reset must persist the empty list")
	}
}
