package sticker

import (
	"fmt"
	"strings"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
)

// Sticker describes one row of the mood/provenance taxonomy. The tables here
// are the single source for badge and sticker presentation metadata.
type Sticker struct {
	Key   string
	Label string
	Icon  string
	Tone  string
	Mood  bool
}

func DefaultStickers() []Sticker {
	s := make([]Sticker, 0, 8)

	s = append(s, Sticker{
		Key:   "happy",
		Label: "Happy",
		Icon:  "😊",
		Tone:  "amber",
		Mood:  true,
	}, Sticker{
		Key:   "calm",
		Label: "Calm",
		Icon:  "😌",
		Tone:  "teal",
		Mood:  true,
	}, Sticker{
		Key:   "sad",
		Label: "Sad",
		Icon:  "😢",
		Tone:  "blue",
		Mood:  true,
	}, Sticker{
		Key:   "excited",
		Label: "Excited",
		Icon:  "🤩",
		Tone:  "pink",
		Mood:  true,
	}, Sticker{
		Key:   "tired",
		Label: "Tired",
		Icon:  "🥱",
		Tone:  "slate",
		Mood:  true,
	}, Sticker{
		Key:   "journal",
		Label: "Journal",
		Icon:  "📓",
		Tone:  "indigo",
	}, Sticker{
		Key:   "scanned",
		Label: "Scanned",
		Icon:  "📄",
		Tone:  "stone",
	}, Sticker{
		Key:   "auto",
		Label: "Auto",
		Icon:  "✨",
		Tone:  "violet",
	})

	return s
}

// ForKey looks up a sticker by its key, case-insensitively.
func ForKey(key string) (Sticker, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, s := range DefaultStickers() {
		if s.Key == k {
			return s, nil
		}
	}
	return Sticker{}, fmt.Errorf("unknown sticker %q", key)
}

// MoodKeys returns the keys of all mood stickers, in table order.
func MoodKeys() []string {
	keys := make([]string, 0, 5)
	for _, s := range DefaultStickers() {
		if s.Mood {
			keys = append(keys, s.Key)
		}
	}
	return keys
}

// Badge converts the sticker into an entry badge.
func (s Sticker) Badge() entry.Badge {
	return entry.Badge{Label: s.Label, Icon: s.Icon, Tone: s.Tone}
}

// Entry converts the sticker into an entry sticker with the given tilt.
func (s Sticker) Entry(tilt float64) *entry.Sticker {
	return &entry.Sticker{Label: s.Label, Icon: s.Icon, Tone: s.Tone, Tilt: tilt}
}

func (s Sticker) String() string {
	return s.Icon
}

// DefaultMoodBadge is the badge applied when no mood was chosen.
func DefaultMoodBadge() entry.Badge {
	return entry.Badge{Label: "Mood", Icon: "🙂", Tone: "stone"}
}

func JournalBadge() entry.Badge {
	s, _ := ForKey("journal")
	return s.Badge()
}

func ScannedBadge() entry.Badge {
	s, _ := ForKey("scanned")
	return s.Badge()
}

// AutoSticker marks entries produced without manual composition.
func AutoSticker(tilt float64) *entry.Sticker {
	s, _ := ForKey("auto")
	return s.Entry(tilt)
}
