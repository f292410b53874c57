package fol

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ppiankov/credo/internal/model"
)

// Assemble renders a validated record into the engine's line-oriented
// belief-set grammar:
//
//	sort_name = { c1, c2 }
//	type(Pred(sort1, sort2))
//
//	Pred(c1, c2)
//
// One line per non-empty sort, one per predicate (no parens at zero arity),
// a blank separator when both declarations and formulas are present, then
// one formula per line with any trailing ';' stripped. Sort lines are emitted
// in name order so output is deterministic.
//
// An entirely empty record assembles to the empty string; callers must treat
// that as a failure, not as a valid empty belief set.
func Assemble(rec *model.Record) string {
	var parts []string

	sortNames := make([]string, 0, len(rec.Sorts))
	for name := range rec.Sorts {
		sortNames = append(sortNames, name)
	}
	sort.Strings(sortNames)

	for _, name := range sortNames {
		constants := rec.Sorts[name]
		if len(constants) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s = { %s }", name, strings.Join(constants, ", ")))
	}

	for _, p := range rec.Predicates {
		if p.Name == "" {
			continue
		}
		if len(p.Args) > 0 {
			parts = append(parts, fmt.Sprintf("type(%s(%s))", p.Name, strings.Join(p.Args, ", ")))
		} else {
			parts = append(parts, fmt.Sprintf("type(%s)", p.Name))
		}
	}

	if len(rec.Formulas) > 0 {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		for _, f := range rec.Formulas {
			parts = append(parts, strings.TrimSuffix(strings.TrimSpace(f), ";"))
		}
	}

	return strings.Join(parts, "\n")
}
