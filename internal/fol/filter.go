package fol

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/credo/internal/model"
)

// Word runs are matched with Unicode classes rather than \b, which in Go's
// regexp is an ASCII boundary and would split accented constants like "été".
var wordTokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// quantifier keywords are the only lowercase tokens of the grammar itself
var reservedTokens = map[string]bool{
	"forall": true,
	"exists": true,
}

// FilterFormulas drops every formula that references a lowercase token not
// present in the declared-constants set.
//
// This is a deliberately blunt second line of defense, independent of
// ValidateRecord: the generator occasionally invents constants that appear
// outside any predicate application and would slip past the per-predicate
// checks. Dropped formulas are removed silently rather than failing the
// record; the (kept, dropped) counts feed observability.
func FilterFormulas(rec *model.Record) (kept, dropped int) {
	constants := rec.DeclaredConstants()

	valid := rec.Formulas[:0]
	for _, formula := range rec.Formulas {
		admitted := true
		for _, token := range wordTokenRe.FindAllString(formula, -1) {
			first, _ := utf8.DecodeRuneInString(token)
			if first != '_' && !unicode.IsLower(first) {
				continue
			}
			if reservedTokens[token] {
				continue
			}
			if !constants[token] {
				admitted = false
				break
			}
		}
		if admitted {
			valid = append(valid, formula)
			kept++
		} else {
			dropped++
		}
	}
	rec.Formulas = valid

	return kept, dropped
}
