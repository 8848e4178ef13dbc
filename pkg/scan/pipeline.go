// Package scan turns a captured image into a templated journal entry via an
// external OCR oracle.
package scan

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
	"github.com/prodipto2001/journal-stitch/pkg/sticker"
)

// State is the per-invocation pipeline phase.
type State int

const (
	StateIdle State = iota
	StatePreparing
	StateScanning
	StateCreating
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreparing:
		return "preparing"
	case StateScanning:
		return "scanning"
	case StateCreating:
		return "creating"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Status is the pipeline's externally visible state plus a display message.
type Status struct {
	State   State
	Message string
}

// DoneDismissAfter is how long a success status lingers before the pipeline
// returns to idle on its own. Failures stay until dismissed.
const DoneDismissAfter = 1800 * time.Millisecond

// NotImageMessage is surfaced when the source is not a local image data URI.
const NotImageMessage = "Only local uploaded images can be scanned."

var (
	// ErrScanInFlight rejects a second scan while one is pending. The
	// original implementation let both proceed and commit twice; the busy
	// guard is deliberate hardening.
	ErrScanInFlight = errors.New("scan: a scan is already in flight")

	ErrNotImage = errors.New(NotImageMessage)
)

var dataURIPattern = regexp.MustCompile(`^data:([a-z0-9.+-]+/[a-z0-9.+-]+);base64,(.+)$`)

// TextExtractor is the OCR oracle consumed by the pipeline.
type TextExtractor interface {
	Extract(ctx context.Context, mimeType, base64 string) (string, error)
}

// Appender is the slice of the journal the pipeline commits to.
type Appender interface {
	Append(e entry.Entry) entry.Entry
}

// Pipeline drives Idle -> Preparing -> Scanning -> Creating -> Done|Failed
// for one scan at a time, reporting transitions through the status callback.
type Pipeline struct {
	mu       sync.Mutex
	busy     bool
	status   Status
	dismiss  *time.Timer
	onStatus func(Status)

	extractor TextExtractor
	journal   Appender

	// Now is the entry date clock, overridable in tests. Nil means time.Now.
	Now func() time.Time
}

// New creates a pipeline. onStatus may be nil.
func New(extractor TextExtractor, journal Appender, onStatus func(Status)) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		journal:   journal,
		onStatus:  onStatus,
		status:    Status{State: StateIdle},
	}
}

// Status returns the current pipeline status.
func (p *Pipeline) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Dismiss clears a lingering Done or Failed status back to Idle.
func (p *Pipeline) Dismiss() {
	p.mu.Lock()
	if p.dismiss != nil {
		p.dismiss.Stop()
		p.dismiss = nil
	}
	p.mu.Unlock()
	p.setStatus(Status{State: StateIdle})
}

// Scan runs one scan invocation end to end and commits the resulting entry.
// The src must be a base64 image data URI. A scan already in flight returns
// ErrScanInFlight without touching pipeline state.
func (p *Pipeline) Scan(ctx context.Context, src string) (entry.Entry, error) {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return entry.Entry{}, ErrScanInFlight
	}
	p.busy = true
	if p.dismiss != nil {
		p.dismiss.Stop()
		p.dismiss = nil
	}
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	p.setStatus(Status{State: StatePreparing, Message: "Preparing image..."})

	mimeType, payload, err := splitDataURI(src)
	if err != nil {
		return entry.Entry{}, p.fail(NotImageMessage, err)
	}

	p.setStatus(Status{State: StateScanning, Message: "Extracting text..."})

	text, err := p.extractor.Extract(ctx, mimeType, payload)
	if err != nil {
		return entry.Entry{}, p.fail(err.Error(), err)
	}

	p.setStatus(Status{State: StateCreating, Message: "Creating memory..."})

	title, body := BuildTemplate(text)
	e := entry.Entry{
		Title:     title,
		Content:   body,
		DateLabel: entry.FormatDate(p.now()),
		Badges:    []entry.Badge{sticker.ScannedBadge(), sticker.JournalBadge()},
		Sticker:   sticker.AutoSticker(-3),
	}
	committed := p.journal.Append(e)

	p.setStatus(Status{State: StateDone, Message: "Memory created from scan."})
	p.scheduleDismiss()

	return committed, nil
}

func (p *Pipeline) fail(message string, err error) error {
	p.setStatus(Status{State: StateFailed, Message: message})
	return err
}

func (p *Pipeline) setStatus(s Status) {
	p.mu.Lock()
	p.status = s
	cb := p.onStatus
	p.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

func (p *Pipeline) scheduleDismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dismiss = time.AfterFunc(DoneDismissAfter, func() {
		p.mu.Lock()
		done := p.status.State == StateDone
		p.dismiss = nil
		p.mu.Unlock()
		if done {
			p.setStatus(Status{State: StateIdle})
		}
	})
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// splitDataURI validates the data:<mime>;base64,<payload> shape and that the
// payload is an image.
func splitDataURI(src string) (mimeType, payload string, err error) {
	m := dataURIPattern.FindStringSubmatch(strings.TrimSpace(src))
	if m == nil {
		return "", "", ErrNotImage
	}
	if !strings.HasPrefix(m[1], "image/") {
		return "", "", ErrNotImage
	}
	return m[1], m[2], nil
}
