package scan

import (
	"strings"
	"testing"
)

func TestBuildTemplateLakeScenario(t *testing.T) {
	raw := "Trip to the lake\nSaw a heron\n\n\nGreat day"

	title, body := BuildTemplate(raw)
	if title != "Trip to the lake" {
		t.Fatalf("unexpected title: %q", title)
	}
	if !strings.Contains(body, "Summary:\nTrip to the lake Saw a heron\n") {
		t.Fatalf("unexpected summary section:\n%s", body)
	}
	if !strings.Contains(body, "Extracted Text:\nTrip to the lake\nSaw a heron\n\nGreat day") {
		t.Fatalf("blank-line run not collapsed:\n%s", body)
	}
}

func TestBuildTemplateSections(t *testing.T) {
	_, body := BuildTemplate("one\ntwo\nthree\nfour\nfive\nsix")

	if !strings.HasPrefix(body, "SCANNED JOURNAL\n\n") {
		t.Fatalf("missing header:\n%s", body)
	}
	if !strings.Contains(body, "Highlights:\n- one\n- two\n- three\n- four\n- five\n") {
		t.Fatalf("expected first five lines bulleted:\n%s", body)
	}
	if strings.Contains(body, "- six") {
		t.Fatalf("highlights must stop at five lines:\n%s", body)
	}
}

func TestBuildTemplateEmptyText(t *testing.T) {
	title, body := BuildTemplate("  \n\n \t\n")

	if title != PlaceholderTitle {
		t.Fatalf("expected placeholder title, got %q", title)
	}
	for _, want := range []string{noSummary, noHighlights, noText} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}
}

func TestBuildTemplateTitleTruncation(t *testing.T) {
	long := strings.Repeat("a", 80)
	title, _ := BuildTemplate(long)

	if len([]rune(title)) != 65 {
		t.Fatalf("expected 64 runes plus ellipsis, got %d", len([]rune(title)))
	}
	if !strings.HasSuffix(title, "…") {
		t.Fatalf("expected ellipsis suffix: %q", title)
	}

	exact := strings.Repeat("b", 64)
	if title, _ := BuildTemplate(exact); title != exact {
		t.Fatalf("64-rune title must not be truncated: %q", title)
	}
}

func TestCleanTextTrailingSpaces(t *testing.T) {
	got := CleanText("line one   \nline two\t\n")
	if got != "line one\nline two" {
		t.Fatalf("unexpected clean text: %q", got)
	}
}
