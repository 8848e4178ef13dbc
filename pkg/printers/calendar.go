package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
)

var (
	calHeaderStyle   = lipgloss.NewStyle().Bold(true)
	calEmptyStyle    = lipgloss.NewStyle().Faint(true)
	calEntryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	calTodayStyle    = lipgloss.NewStyle().Underline(true)
	calSelectedStyle = lipgloss.NewStyle().Reverse(true)
)

// Calendar prints a month grid with populated days highlighted. The index
// maps date keys to entry counts; selected, when non-nil, is marked.
func (pp *PrettyPrint) Calendar(month time.Time, index map[string]int, selected *time.Time) {
	pp.Title(month.Format("January 2006"))
	_, _ = fmt.Fprintln(color.Output, renderMonth(month, index, selected))
	_, _ = fmt.Fprintln(color.Output, "")
}

func renderMonth(month time.Time, index map[string]int, selected *time.Time) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	now := time.Now()

	lines := []string{calHeaderStyle.Render("Su Mo Tu We Th Fr Sa")}

	weekdayOffset := int(first.Weekday()) // Sunday == 0
	rows := ((weekdayOffset + daysInMonth) + 6) / 7
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			day := row*7 + col - weekdayOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderDay(first.AddDate(0, 0, day-1), index, now, selected))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(day time.Time, index map[string]int, now time.Time, selected *time.Time) string {
	style := calEmptyStyle
	if index[entry.DateKey(day)] > 0 {
		style = calEntryStyle
	}
	if entry.SameDay(day, now) {
		style = style.Inherit(calTodayStyle)
	}
	if selected != nil && entry.SameDay(day, *selected) {
		style = style.Inherit(calSelectedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", day.Day()))
}
