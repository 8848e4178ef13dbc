package scan

import "strings"

const (
	// PlaceholderTitle names a scanned entry when no text came back.
	PlaceholderTitle = "Scanned Memory"

	titleMaxRunes = 64

	noSummary    = "No summary available."
	noHighlights = "- No highlights detected."
	noText       = "No text could be extracted."
)

// CleanText normalizes OCR output: CRLF to LF, trailing spaces stripped from
// every line, and runs of blank lines collapsed to a single blank line.
func CleanText(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")

	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// BuildTemplate synthesizes the title and fixed-section body of a scanned
// entry from raw OCR text. Empty input still produces a complete document
// built from placeholders.
func BuildTemplate(raw string) (title, body string) {
	cleaned := CleanText(raw)

	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	summary := noSummary
	if len(lines) > 0 {
		summary = strings.Join(lines[:min(2, len(lines))], " ")
	}

	highlights := noHighlights
	if len(lines) > 0 {
		bullets := make([]string, 0, 5)
		for _, line := range lines[:min(5, len(lines))] {
			bullets = append(bullets, "- "+line)
		}
		highlights = strings.Join(bullets, "\n")
	}

	title = PlaceholderTitle
	if len(lines) > 0 {
		title = truncate(lines[0], titleMaxRunes)
	}

	text := cleaned
	if text == "" {
		text = noText
	}

	var b strings.Builder
	b.WriteString("SCANNED JOURNAL\n\n")
	b.WriteString("Summary:\n")
	b.WriteString(summary)
	b.WriteString("\n\nHighlights:\n")
	b.WriteString(highlights)
	b.WriteString("\n\nExtracted Text:\n")
	b.WriteString(text)

	return title, b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
