// Package journal holds the in-memory entry list, the single source of truth
// for what is displayed. Every mutation writes the full list back through the
// persistence adapter.
package journal

import (
	"sync"
	"time"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

// Service owns the ordered entry list. Display order is newest first; Append
// prepends, so insertion order is reverse-chronological by construction.
type Service struct {
	mu      sync.Mutex
	p       store.Persistence
	entries []entry.Entry
	lastID  int64
}

// Load pulls the persisted entries and seeds the id clock past the newest id.
func Load(p store.Persistence) *Service {
	s := &Service{p: p}
	if p != nil {
		s.entries = p.LoadEntries()
	}
	for _, e := range s.entries {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	return s
}

// NextID issues a creation-timestamp id in milliseconds, bumped past the last
// issued id when two entries land on the same millisecond.
func (s *Service) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextIDLocked()
}

func (s *Service) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Append prepends the entry and persists the whole list. A zero id is
// assigned from the id clock.
func (s *Service) Append(e entry.Entry) entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		e.ID = s.nextIDLocked()
	} else if e.ID > s.lastID {
		s.lastID = e.ID
	}
	if e.Badges == nil {
		e.Badges = []entry.Badge{}
	}

	s.entries = append([]entry.Entry{e}, s.entries...)
	s.persistLocked()
	return e
}

// Patch carries the only fields an explicit edit may change.
type Patch struct {
	Title   *string
	Content *string
}

// Update applies the patch to the entry with the given id and persists. It
// reports whether an entry was found; an unknown id leaves the store
// untouched.
func (s *Service) Update(id int64, patch Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.entries[i].Title = *patch.Title
		}
		if patch.Content != nil {
			s.entries[i].Content = *patch.Content
		}
		s.persistLocked()
		return true
	}
	return false
}

// All returns the entries in display order. The slice is a copy so callers
// cannot mutate the store behind its back.
func (s *Service) All() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Reset clears the store and persists the empty list.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.persistLocked()
}

// Replace swaps the in-memory list without persisting, used when the
// persistence layer reports an external change.
func (s *Service) Replace(list []entry.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = list
	for _, e := range s.entries {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
}

func (s *Service) persistLocked() {
	if s.p == nil {
		return
	}
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	s.p.SaveEntries(out)
}
