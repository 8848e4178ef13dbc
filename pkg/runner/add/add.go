package add

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/prodipto2001/journal-stitch/pkg/composer"
	"github.com/prodipto2001/journal-stitch/pkg/journal"
	"github.com/prodipto2001/journal-stitch/pkg/printers"
	"github.com/prodipto2001/journal-stitch/pkg/store"
)

// Add composes a new memory from the command line and commits it.
type Add struct {
	Title   string
	Message string
	Mood    string
	Notes   []string
	Images  []string

	Persistence store.Persistence
}

// canvas matches the front end's composer canvas.
var canvas = composer.Bounds{W: 960, H: 720}

func (n *Add) Do(ctx context.Context) error {
	j := journal.Load(n.Persistence)

	c := composer.New(canvas)
	c.Title = n.Title
	c.Content = n.Message

	if n.Mood != "" {
		if err := c.SetMood(n.Mood); err != nil {
			return err
		}
	}

	for _, text := range n.Notes {
		sn := c.AddStickyNote()
		c.SetNoteText(sn.ID, text)
	}

	for _, path := range n.Images {
		src, err := dataURI(path)
		if err != nil {
			return fmt.Errorf("add: read image %s: %w", path, err)
		}
		c.PlaceImage(src)
	}

	e, err := c.Submit()
	if err != nil {
		return err
	}
	e = j.Append(e)

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Memories", j.Len())
	pp.Entries(j.All()...)

	return nil
}

// dataURI reads an image file into the data-URI form the composer stores.
func dataURI(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mime := http.DetectContentType(raw)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(raw)), nil
}
