// Package composer manages the draft entry under construction: freeform text,
// freely positioned images, and sticky notes on a bounded canvas.
package composer

import (
	"errors"
	"strings"
	"time"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
	"github.com/prodipto2001/journal-stitch/pkg/sticker"
)

const (
	// DefaultImageWidth is the width given to a freshly placed image.
	DefaultImageWidth = 220.0

	// ImageAspect fixes image height as a ratio of width.
	ImageAspect = 0.75

	NoteWidth  = 180.0
	NoteHeight = 150.0

	// NoteCascadeStep offsets each new note by the existing note count so
	// sequential notes visibly cascade instead of stacking exactly.
	NoteCascadeStep = 24.0

	defaultImageX = 40.0
	defaultImageY = 40.0
	noteBaseX     = 60.0
	noteBaseY     = 60.0

	// PlaceholderTitle and PlaceholderContent back-fill a submission whose
	// other fields are populated.
	PlaceholderTitle   = "Untitled memory"
	PlaceholderContent = "No notes added."
)

// ErrEmptyDraft rejects a submission with no title, content, images, or notes.
var ErrEmptyDraft = errors.New("composer: draft is empty")

// PlacedImage is an image positioned on the draft canvas.
type PlacedImage struct {
	ID    int64
	Src   string
	X     float64
	Y     float64
	Width float64
}

// Height derives the image height from its fixed aspect ratio.
func (i PlacedImage) Height() float64 {
	return i.Width * ImageAspect
}

// StickyNote is a positioned note on the draft canvas.
type StickyNote struct {
	ID    int64
	Text  string
	X     float64
	Y     float64
	Width float64
}

// Composer owns the draft canvas state until Submit hands a copy to the
// journal. It is single-pointer, single-goroutine state; no locking.
type Composer struct {
	Title   string
	Content string

	// Now is the draft's clock, overridable in tests. Nil means time.Now.
	Now func() time.Time

	bounds    Bounds
	images    []PlacedImage
	notes     []StickyNote
	mood      string
	nextEl    int64
	imageDrag *dragSession
	noteDrag  *dragSession
}

// New creates an empty draft over a canvas of the given bounds.
func New(bounds Bounds) *Composer {
	return &Composer{bounds: bounds}
}

// AppendToken appends a token to the draft body with a single space
// separator, unless the body is empty or already ends in a newline.
func (c *Composer) AppendToken(text string) {
	if c.Content == "" || strings.HasSuffix(c.Content, "\n") {
		c.Content += text
		return
	}
	c.Content += " " + text
}

// PlaceImage adds an image at the default position with the default width.
func (c *Composer) PlaceImage(src string) PlacedImage {
	c.nextEl++
	img := PlacedImage{
		ID:    c.nextEl,
		Src:   src,
		X:     defaultImageX,
		Y:     defaultImageY,
		Width: DefaultImageWidth,
	}
	c.images = append(c.images, img)
	return img
}

// AddStickyNote appends an empty note, cascaded by the existing note count.
func (c *Composer) AddStickyNote() StickyNote {
	c.nextEl++
	step := float64(len(c.notes)) * NoteCascadeStep
	n := StickyNote{
		ID:    c.nextEl,
		X:     noteBaseX + step,
		Y:     noteBaseY + step,
		Width: NoteWidth,
	}
	c.notes = append(c.notes, n)
	return n
}

// SetNoteText replaces the text of the note with the given id.
func (c *Composer) SetNoteText(id int64, text string) bool {
	for i := range c.notes {
		if c.notes[i].ID == id {
			c.notes[i].Text = text
			return true
		}
	}
	return false
}

// SetNotePosition moves a note directly, clamped to the canvas the same way
// a drag would be.
func (c *Composer) SetNotePosition(id int64, x, y float64) bool {
	for i := range c.notes {
		if c.notes[i].ID == id {
			c.notes[i].X = clamp(x, c.bounds.W-c.notes[i].Width)
			c.notes[i].Y = clamp(y, c.bounds.H-NoteHeight)
			return true
		}
	}
	return false
}

// SetMood records the last-selected mood sticker for badge derivation.
func (c *Composer) SetMood(key string) error {
	s, err := sticker.ForKey(key)
	if err != nil {
		return err
	}
	if !s.Mood {
		return errors.New("composer: not a mood sticker: " + key)
	}
	c.mood = s.Key
	return nil
}

// Images returns a copy of the placed images.
func (c *Composer) Images() []PlacedImage {
	out := make([]PlacedImage, len(c.images))
	copy(out, c.images)
	return out
}

// Notes returns a copy of the sticky notes.
func (c *Composer) Notes() []StickyNote {
	out := make([]StickyNote, len(c.notes))
	copy(out, c.notes)
	return out
}

// Empty reports whether nothing submittable is on the draft.
func (c *Composer) Empty() bool {
	if strings.TrimSpace(c.Title) != "" || strings.TrimSpace(c.Content) != "" {
		return false
	}
	if len(c.images) > 0 {
		return false
	}
	for _, n := range c.notes {
		if strings.TrimSpace(n.Text) != "" {
			return false
		}
	}
	return true
}

// Submit copies the draft into a new entry and resets the draft. The entry id
// is left zero for the journal to assign.
func (c *Composer) Submit() (entry.Entry, error) {
	if c.Empty() {
		return entry.Entry{}, ErrEmptyDraft
	}

	title := strings.TrimSpace(c.Title)
	if title == "" {
		title = PlaceholderTitle
	}
	content := strings.TrimSpace(c.Content)
	if content == "" {
		content = PlaceholderContent
	}

	moodBadge := sticker.DefaultMoodBadge()
	var entrySticker *entry.Sticker
	if c.mood != "" {
		s, err := sticker.ForKey(c.mood)
		if err == nil {
			moodBadge = s.Badge()
			entrySticker = s.Entry(tiltFor(len(c.notes) + len(c.images)))
		}
	}

	e := entry.Entry{
		Title:     title,
		Content:   content,
		DateLabel: entry.FormatDate(c.now()),
		Badges:    []entry.Badge{moodBadge, sticker.JournalBadge()},
		Sticker:   entrySticker,
	}

	for _, img := range c.images {
		e.Images = append(e.Images, entry.Image{Src: img.Src})
	}
	for _, n := range c.notes {
		text := strings.TrimSpace(n.Text)
		if text == "" {
			continue
		}
		e.Notes = append(e.Notes, entry.Note{Text: text, X: n.X, Y: n.Y})
	}

	c.Reset()
	return e, nil
}

// Reset discards all draft state.
func (c *Composer) Reset() {
	c.Title = ""
	c.Content = ""
	c.images = nil
	c.notes = nil
	c.mood = ""
	c.imageDrag = nil
	c.noteDrag = nil
}

func (c *Composer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// tiltFor spreads sticker tilts over a small deterministic range.
func tiltFor(n int) float64 {
	return float64(n%5)*3 - 6
}
