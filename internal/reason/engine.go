package reason

import (
	"context"
	"strings"

	"github.com/ppiankov/credo/internal/model"
)

// Engine is the external logic-reasoning service. Credo treats it as a
// synchronous black box: it decides satisfiability and entailment, credo only
// guards the integrity of what it is handed and interprets the marker-based
// result convention.
type Engine interface {
	// ValidateBeliefSet checks that assembled belief-set text parses in the
	// engine's grammar.
	ValidateBeliefSet(ctx context.Context, beliefSet string) (bool, string, error)

	// ValidateQueryWithContext checks a query's syntax and typing against a
	// specific belief set.
	ValidateQueryWithContext(ctx context.Context, beliefSet, query string) (bool, string, error)

	// ExecuteQuery runs a query and returns the engine's raw result text,
	// which carries an ACCEPTED/REJECTED/error marker.
	ExecuteQuery(ctx context.Context, beliefSet, query string) (string, error)

	// IsConsistent checks whether the belief set is consistent.
	IsConsistent(ctx context.Context, beliefSet string) (bool, string, error)

	// ValidateFormula checks a single formula's syntax.
	ValidateFormula(ctx context.Context, formula string) (bool, string, error)
}

// Classify maps the engine's raw result text onto a verdict using the marker
// convention: an error marker wins over everything, then ACCEPTED, then
// REJECTED; anything else is unknown.
func Classify(raw string) model.Verdict {
	upper := strings.ToUpper(raw)
	switch {
	case raw == "" || strings.Contains(upper, "ERROR"):
		return model.VerdictUnknown
	case strings.Contains(upper, "ACCEPTED"):
		return model.VerdictAccepted
	case strings.Contains(upper, "REJECTED"):
		return model.VerdictRejected
	default:
		return model.VerdictUnknown
	}
}
