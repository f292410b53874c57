package fol

import (
	"fmt"
	"os"

	"github.com/ppiankov/credo/internal/model"
)

// CorrectPredicateArgs repairs predicate declarations whose argument slots
// name a constant instead of the constant's sort — a frequent generator
// mistake ("Loves(jean, paris)" declared instead of "Loves(person, place)").
//
// For each slot that is not a declared sort name, the owning sort of that
// constant is looked up and substituted. Slots that resolve to no sort are
// kept as-is with a warning; the validator decides their fate later.
// Returns the number of corrected slots. Idempotent for a stable record.
func CorrectPredicateArgs(rec *model.Record) int {
	owners := rec.SortOfConstant()
	corrected := 0

	for i, predicate := range rec.Predicates {
		for j, arg := range predicate.Args {
			if _, isSort := rec.Sorts[arg]; isSort {
				continue
			}
			owner, found := owners[arg]
			if !found {
				fmt.Fprintf(os.Stderr, "Warning: no sort found for argument %q of predicate %q, kept as-is\n",
					arg, predicate.Name)
				continue
			}
			rec.Predicates[i].Args[j] = owner
			corrected++
		}
	}

	return corrected
}
