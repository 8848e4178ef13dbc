package stickers

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/prodipto2001/journal-stitch/pkg/sticker"
)

// Stickers prints the sticker taxonomy: mood stickers pickable in the
// composer plus the provenance badges applied automatically.
type Stickers struct{}

func (n *Stickers) Do(ctx context.Context) error {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("Stickers")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("KEY", "", "LABEL", "KIND")

	faint := color.New(color.Faint)
	for _, s := range sticker.DefaultStickers() {
		kind := "provenance"
		if s.Mood {
			kind = "mood"
		}
		tbl.AddRow(s.Key, s.Icon, s.Label, faint.Sprint(kind))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")

	return nil
}
