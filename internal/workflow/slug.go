package workflow

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// defaultSlug is used when a title sanitizes to nothing.
const defaultSlug = "clase"

// Slugify derives a filesystem-safe slug from a title: lowercase, diacritics
// folded to their base letter, spaces turned into hyphens, and everything
// outside [a-z0-9-_] stripped. Never returns an empty string.
func Slugify(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, " ", "-")

	var b strings.Builder
	for _, r := range norm.NFD.String(normalized) {
		if unicode.Is(unicode.Mn, r) {
			// combining mark left over from decomposition
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return defaultSlug
	}
	return b.String()
}
