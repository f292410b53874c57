package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^a-zA-Z0-9_]`)

	// NFD decomposition followed by removing combining marks transliterates
	// accented letters to their ASCII base (é -> e, ü -> u).
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Identifier canonicalizes a free-form constant name into the safe identifier
// alphabet [a-z0-9_]: transliterate accents, collapse whitespace runs into a
// single underscore, drop everything else, lowercase.
//
// Identifier is pure and idempotent: Identifier(Identifier(s)) == Identifier(s).
func Identifier(text string) string {
	ascii, _, err := transform.String(stripMarks, text)
	if err != nil {
		ascii = text
	}
	ascii = whitespaceRun.ReplaceAllString(ascii, "_")
	ascii = invalidChars.ReplaceAllString(ascii, "")
	return strings.ToLower(ascii)
}
