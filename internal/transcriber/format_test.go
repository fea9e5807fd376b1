package transcriber

import (
	"strings"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"truncates fraction", 3661.9, "01:01:01"},
		{"just under a minute", 59.999, "00:00:59"},
		{"exact hour", 3600, "01:00:00"},
		{"multi hour", 7325, "02:02:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestSegmentsToMarkdown(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 4.5, Text: "Hola a todos"},
		{Start: 4.5, End: 9.2, Text: "a | b"},
	}

	got := SegmentsToMarkdown(segments)
	lines := strings.Split(got, "\n")

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, divider, 2 rows), got %d:\n%s", len(lines), got)
	}
	if lines[0] != "| Inicio | Fin | Texto |" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "| 00:00:00 | 00:00:04 | Hola a todos |" {
		t.Errorf("row = %q", lines[2])
	}

	// Pipes inside text must be escaped so the table keeps exactly 3 columns.
	if !strings.Contains(lines[3], `a \| b`) {
		t.Errorf("pipe not escaped in %q", lines[3])
	}
	unescaped := strings.ReplaceAll(lines[3], `\|`, "")
	if got := strings.Count(unescaped, "|"); got != 4 {
		t.Errorf("row %q has %d cell delimiters, want 4", lines[3], got)
	}
}

func TestSegmentsToMarkdownEmpty(t *testing.T) {
	got := SegmentsToMarkdown(nil)
	if got != "| Inicio | Fin | Texto |\n|-------|-----|-------|" {
		t.Errorf("empty table = %q", got)
	}
}
