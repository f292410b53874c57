package fol

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/credo/internal/model"
)

var (
	quantifiedVarRe = regexp.MustCompile(`(?:forall|exists)\s+([A-Z][a-zA-Z0-9_]*)\s*:`)
	predicateUseRe  = regexp.MustCompile(`([A-Z][a-zA-Z0-9]*)\((.*?)\)`)
)

// ValidateRecord checks the referential integrity of a candidate record,
// short-circuiting on the first violation:
//
//   - all three top-level fields are present;
//   - every predicate used in a formula is declared;
//   - every use matches the declared arity exactly;
//   - every lowercase-leading argument is a declared constant;
//   - every uppercase-leading argument is bound by a forall/exists
//     quantifier within the same formula.
//
// The check is purely structural. It never evaluates truth.
func ValidateRecord(rec *model.Record) error {
	if rec.Sorts == nil || rec.Predicates == nil || rec.Formulas == nil {
		return &ValidationError{
			Kind: KindSchema,
			Msg:  "record must contain 'sorts', 'predicates' and 'formulas'",
		}
	}

	constants := rec.DeclaredConstants()
	arities := rec.Arities()

	for _, formula := range rec.Formulas {
		bound := make(map[string]bool)
		for _, m := range quantifiedVarRe.FindAllStringSubmatch(formula, -1) {
			bound[m[1]] = true
		}

		for _, m := range predicateUseRe.FindAllStringSubmatch(formula, -1) {
			name, argsText := m[1], m[2]

			declaredArity, declared := arities[name]
			if !declared {
				return &ValidationError{
					Kind: KindUndeclaredPredicate,
					Msg:  fmt.Sprintf("predicate %q used in formula %q is not declared", name, formula),
				}
			}

			args := splitArgs(argsText)
			if declaredArity != len(args) {
				return &ValidationError{
					Kind: KindArityMismatch,
					Msg: fmt.Sprintf("arity mismatch for %q: declared %d, used %d in formula %q",
						name, declaredArity, len(args), formula),
				}
			}

			for _, arg := range args {
				first, _ := utf8.DecodeRuneInString(arg)
				switch {
				case unicode.IsLower(first):
					if !constants[arg] {
						return &ValidationError{
							Kind: KindUndeclaredConstant,
							Msg:  fmt.Sprintf("constant %q used in formula %q is not declared in any sort", arg, formula),
						}
					}
				case unicode.IsUpper(first):
					if !bound[arg] {
						return &ValidationError{
							Kind: KindUnboundVariable,
							Msg:  fmt.Sprintf("variable %q used in formula %q is not bound by a quantifier", arg, formula),
						}
					}
				}
			}
		}
	}

	return nil
}

// splitArgs splits a predicate argument list on commas, trimming whitespace
// and dropping empty entries.
func splitArgs(argsText string) []string {
	if strings.TrimSpace(argsText) == "" {
		return nil
	}
	parts := strings.Split(argsText, ",")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			args = append(args, p)
		}
	}
	return args
}
