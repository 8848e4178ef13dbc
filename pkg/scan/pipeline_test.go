package scan

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
)

type fakeExtractor struct {
	mu      sync.Mutex
	text    string
	err     error
	block   chan struct{}
	gotMime string
	calls   int
}

func (f *fakeExtractor) Extract(ctx context.Context, mimeType, base64 string) (string, error) {
	f.mu.Lock()
	f.gotMime = mimeType
	f.calls++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

type fakeJournal struct {
	mu      sync.Mutex
	entries []entry.Entry
}

func (f *fakeJournal) Append(e entry.Entry) entry.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, e)
	return e
}

const pngURI = "data:image/png;base64,iVBORw0KGgo="

func TestScanSuccess(t *testing.T) {
	ex := &fakeExtractor{text: "Trip to the lake\nSaw a heron"}
	j := &fakeJournal{}

	var states []State
	p := New(ex, j, func(s Status) { states = append(states, s.State) })
	p.Now = func() time.Time {
		return time.Date(2024, time.March, 1, 8, 0, 0, 0, time.Local)
	}

	e, err := p.Scan(context.Background(), pngURI)
	require.NoError(t, err)

	assert.Equal(t, "Trip to the lake", e.Title)
	assert.Equal(t, "March 1, 2024", e.DateLabel)
	require.Len(t, e.Badges, 2)
	assert.Equal(t, "Scanned", e.Badges[0].Label)
	assert.Equal(t, "Journal", e.Badges[1].Label)
	require.NotNil(t, e.Sticker)
	assert.Equal(t, "Auto", e.Sticker.Label)

	assert.Equal(t, "image/png", ex.gotMime)
	assert.Equal(t, []State{StatePreparing, StateScanning, StateCreating, StateDone}, states)
	assert.Len(t, j.entries, 1)
}

func TestScanEmptyTextStillCommits(t *testing.T) {
	ex := &fakeExtractor{text: "   \n "}
	j := &fakeJournal{}
	p := New(ex, j, nil)

	e, err := p.Scan(context.Background(), pngURI)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderTitle, e.Title)
	assert.Len(t, j.entries, 1)
}

func TestScanRejectsNonImageSource(t *testing.T) {
	j := &fakeJournal{}
	p := New(&fakeExtractor{}, j, nil)

	for _, src := range []string{
		"https://example.com/photo.png",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,rawpayload",
		"",
	} {
		_, err := p.Scan(context.Background(), src)
		require.ErrorIs(t, err, ErrNotImage, "src %q", src)

		st := p.Status()
		assert.Equal(t, StateFailed, st.State)
		assert.Equal(t, NotImageMessage, st.Message)
		p.Dismiss()
	}
	assert.Empty(t, j.entries)
}

func TestScanExtractorFailure(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("model quota exceeded")}
	j := &fakeJournal{}
	p := New(ex, j, nil)

	_, err := p.Scan(context.Background(), pngURI)
	require.Error(t, err)

	st := p.Status()
	assert.Equal(t, StateFailed, st.State)
	assert.Equal(t, "model quota exceeded", st.Message)
	assert.Empty(t, j.entries)

	// Failed lingers until dismissed.
	assert.Equal(t, StateFailed, p.Status().State)
	p.Dismiss()
	assert.Equal(t, StateIdle, p.Status().State)
}

func TestScanBusyGuard(t *testing.T) {
	ex := &fakeExtractor{text: "hello", block: make(chan struct{})}
	j := &fakeJournal{}
	p := New(ex, j, nil)

	done := make(chan error, 1)
	go func() {
		_, err := p.Scan(context.Background(), pngURI)
		done <- err
	}()

	// Wait for the first scan to reach the extractor.
	deadline := time.Now().Add(2 * time.Second)
	for {
		ex.mu.Lock()
		calls := ex.calls
		ex.mu.Unlock()
		if calls > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("first scan never reached the extractor")
		}
		time.Sleep(5 * time.Millisecond)
	}

	_, err := p.Scan(context.Background(), pngURI)
	require.ErrorIs(t, err, ErrScanInFlight)

	close(ex.block)
	require.NoError(t, <-done)
	assert.Len(t, j.entries, 1)

	// The guard releases once the first scan resolves.
	_, err = p.Scan(context.Background(), pngURI)
	require.NoError(t, err)
	assert.Len(t, j.entries, 2)
}

func TestDoneAutoDismisses(t *testing.T) {
	p := New(&fakeExtractor{text: "x"}, &fakeJournal{}, nil)

	_, err := p.Scan(context.Background(), pngURI)
	require.NoError(t, err)
	require.Equal(t, StateDone, p.Status().State)

	deadline := time.Now().Add(DoneDismissAfter + 2*time.Second)
	for p.Status().State != StateIdle {
		if time.Now().After(deadline) {
			t.Fatal("done status never auto-dismissed")
		}
		time.Sleep(20 * time.Millisecond)
	}
}
