package normalize

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/credo/internal/model"
)

// Record canonicalizes every constant in the record and rewrites the formulas
// to match, returning the original -> normalized mapping. The mapping is
// rebuilt on every call and owned by the caller; it is never persisted.
//
// Formula rewriting substitutes longest originals first on token boundaries,
// so a constant that is a prefix of another ("jean" / "jean_pierre") cannot
// clobber the longer one.
func Record(rec *model.Record) map[string]string {
	constantMap := make(map[string]string)

	for sortName, constants := range rec.Sorts {
		normalized := make([]string, 0, len(constants))
		for _, c := range constants {
			norm := Identifier(c)
			normalized = append(normalized, norm)
			constantMap[c] = norm
		}
		rec.Sorts[sortName] = normalized
	}

	originals := make([]string, 0, len(constantMap))
	for orig := range constantMap {
		originals = append(originals, orig)
	}
	sort.Slice(originals, func(i, j int) bool {
		if len(originals[i]) != len(originals[j]) {
			return len(originals[i]) > len(originals[j])
		}
		return originals[i] < originals[j]
	})

	for i, formula := range rec.Formulas {
		for _, orig := range originals {
			if orig == constantMap[orig] {
				continue
			}
			formula = replaceToken(formula, orig, constantMap[orig])
		}
		rec.Formulas[i] = formula
	}

	return constantMap
}

// replaceToken replaces occurrences of old delimited by token boundaries.
// regexp's \b is ASCII-only, so boundaries are checked by rune: an occurrence
// counts only when the runes on both sides are not word runes. Accented
// originals ("été") are handled exactly like ASCII ones.
func replaceToken(s, old, new string) string {
	if old == "" || old == new {
		return s
	}

	var b strings.Builder
	for {
		i := strings.Index(s, old)
		if i == -1 {
			b.WriteString(s)
			break
		}

		boundaryBefore := true
		if i > 0 {
			r, _ := utf8.DecodeLastRuneInString(s[:i])
			boundaryBefore = !isWordRune(r)
		}
		boundaryAfter := true
		if end := i + len(old); end < len(s) {
			r, _ := utf8.DecodeRuneInString(s[end:])
			boundaryAfter = !isWordRune(r)
		}

		if boundaryBefore && boundaryAfter {
			b.WriteString(s[:i])
			b.WriteString(new)
			s = s[i+len(old):]
			continue
		}

		// Not a whole token; emit up to and including the occurrence's first
		// rune and rescan from there.
		_, w := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[:i+w])
		s = s[i+w:]
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
