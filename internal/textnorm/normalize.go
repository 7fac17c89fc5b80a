// Package textnorm normalizes product display names for cross-source
// textual comparison.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// NormalizeName lowercases a raw product name, strips diacritics
// (e.g. Vietnamese tone marks), replaces everything that is not a
// lowercase ASCII letter, digit or space with a space, and collapses
// runs of whitespace. Empty input yields empty output.
//
//	"Thùng 24 lon bia Hà Nội" -> "thung 24 lon bia ha noi"
func NormalizeName(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	// Decompose into base + combining marks, then drop the marks.
	// The transformer chain keeps per-call state, so it is built here
	// rather than shared between goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, lowered)
	if err != nil {
		// Malformed UTF-8 input; the character filter below still
		// reduces it to ASCII.
		stripped = lowered
	}

	normalized := nonAlnum.ReplaceAllString(stripped, " ")
	normalized = whitespace.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
