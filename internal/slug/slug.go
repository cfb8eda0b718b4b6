// Package slug derives URL-safe identifiers from French titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make lowercases the input, strips accents and collapses every run of
// non-alphanumeric characters into a single hyphen.
func Make(s string) string {
	flat, _, err := transform.String(stripAccents, s)
	if err != nil {
		flat = s
	}
	flat = strings.ToLower(flat)

	var b strings.Builder
	b.Grow(len(flat))
	prevHyphen := true
	for _, r := range flat {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case !prevHyphen:
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
