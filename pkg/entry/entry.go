package entry

import "strings"

// Entry is a single persisted journal record. IDs are creation timestamps in
// milliseconds, so a freshly created entry sorts after everything before it.
type Entry struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	DateLabel string  `json:"dateLabel"`
	Badges    []Badge `json:"badges"`
	Images    []Image `json:"images,omitempty"`
	Notes     []Note  `json:"notes,omitempty"`
	Sticker   *Sticker `json:"sticker,omitempty"`
}

// Badge is a small labeled tag rendered on an entry card.
type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Tone  string `json:"tone"`
}

// Image is a picture placed on an entry, carried as a data URI.
type Image struct {
	Src string `json:"src"`
}

// Note is a sticky note pinned to an entry at a canvas position.
type Note struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Sticker is a decorative provenance marker on an entry card.
type Sticker struct {
	Label string  `json:"label"`
	Icon  string  `json:"icon"`
	Tone  string  `json:"tone"`
	Tilt  float64 `json:"tilt"`
}

// BadgeLabels returns the labels of all badges on the entry.
func (e *Entry) BadgeLabels() []string {
	labels := make([]string, 0, len(e.Badges))
	for _, b := range e.Badges {
		labels = append(labels, b.Label)
	}
	return labels
}

// Preview returns the first line of the entry body, trimmed.
func (e *Entry) Preview() string {
	line := e.Content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
