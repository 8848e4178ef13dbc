package store

import (
	"context"
	"testing"
	"time"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
)

func TestPersistenceWatchEmitsEntriesChanges(t *testing.T) {
	p, _ := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	p.SaveEntries([]entry.Entry{{ID: 1, Title: "hello", Badges: []entry.Badge{}}})

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventEntriesChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for entries change event")
		}
	}
}

func TestPersistenceWatchClosesOnCancel(t *testing.T) {
	p, _ := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for channel close")
		}
	}
}
