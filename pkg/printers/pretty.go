package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("1706169600000  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" memory")
	default:
		_, _ = c.Println(" memories")
	}
}

// Entries renders entry cards as rows: date, badges, title, body preview.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	for _, e := range entries {
		badges := badgeLine(&e)
		if pp.ShowID {
			tbl.AddRow(y.Sprintf("%d", e.ID), d.Sprint(e.DateLabel), badges, e.Title, e.Preview())
		} else {
			tbl.AddRow(d.Sprint(e.DateLabel), badges, e.Title, e.Preview())
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Detail renders one entry in full: header, badges, body, notes, sticker.
func (pp *PrettyPrint) Detail(e *entry.Entry) {
	pp.Title(e.Title)
	d := color.New(color.Faint)
	_, _ = d.Println(e.DateLabel)
	if line := badgeLine(e); line != "" {
		fmt.Println(line)
	}
	fmt.Println("")
	fmt.Println(e.Content)
	if len(e.Notes) > 0 {
		fmt.Println("")
		n := color.New(color.FgHiYellow)
		for _, note := range e.Notes {
			_, _ = n.Printf("  🗒 %s\n", note.Text)
		}
	}
	if e.Sticker != nil {
		fmt.Printf("\n%s %s\n", e.Sticker.Icon, e.Sticker.Label)
	}
	fmt.Println("")
}

func badgeLine(e *entry.Entry) string {
	parts := make([]string, 0, len(e.Badges))
	for _, b := range e.Badges {
		if b.Icon != "" {
			parts = append(parts, b.Icon+" "+b.Label)
		} else {
			parts = append(parts, b.Label)
		}
	}
	return strings.Join(parts, " · ")
}
