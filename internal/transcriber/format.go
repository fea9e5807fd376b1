package transcriber

import (
	"fmt"
	"strings"
)

// SegmentsToMarkdown renders the segments as a readable Markdown table.
func SegmentsToMarkdown(segments []Segment) string {
	lines := []string{"| Inicio | Fin | Texto |", "|-------|-----|-------|"}
	for _, segment := range segments {
		cleanText := strings.ReplaceAll(segment.Text, "|", "\\|")
		lines = append(lines, fmt.Sprintf(
			"| %s | %s | %s |",
			FormatTimestamp(segment.Start),
			FormatTimestamp(segment.End),
			cleanText,
		))
	}
	return strings.Join(lines, "\n")
}

// FormatTimestamp renders seconds as HH:MM:SS, truncating the fraction.
func FormatTimestamp(seconds float64) string {
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	remainder := totalSeconds % 3600
	return fmt.Sprintf("%02d:%02d:%02d", hours, remainder/60, remainder%60)
}
