package fol

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/credo/internal/model"
)

var (
	sortDeclRe = regexp.MustCompile(`(\w+)\s*=\s*\{\s*([^}]+)\s*\}`)
	predDeclRe = regexp.MustCompile(`type\(([\w_]+)(?:\(([^)]*)\))?\)`)
)

// LookupTable is the index derived from assembled belief-set text: which
// sorts exist, which constants they hold, and each predicate's arity. It
// lives only for the duration of one query-generation call.
type LookupTable struct {
	Sorts      map[string]map[string]bool
	Constants  map[string]bool
	Predicates map[string]int
}

// ParseBeliefSet scans belief-set text back into a lookup table. It is
// tolerant of exactly the Assemble output format — two independent regex
// scans for sort-declaration and predicate-declaration lines — not a
// general-purpose grammar parser.
func ParseBeliefSet(text string) *LookupTable {
	table := &LookupTable{
		Sorts:      make(map[string]map[string]bool),
		Constants:  make(map[string]bool),
		Predicates: make(map[string]int),
	}

	for _, m := range sortDeclRe.FindAllStringSubmatch(text, -1) {
		name, constantsText := m[1], m[2]
		members := make(map[string]bool)
		for _, c := range strings.Split(constantsText, ",") {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			members[c] = true
			table.Constants[c] = true
		}
		table.Sorts[name] = members
	}

	for _, m := range predDeclRe.FindAllStringSubmatch(text, -1) {
		name, argsText := m[1], m[2]
		table.Predicates[name] = len(splitArgs(argsText))
	}

	return table
}

// CheckCandidate runs the structural validations on one query candidate,
// short-circuiting on the first failure:
//
//  1. the predicate name is a non-empty string;
//  2. the predicate exists in the table;
//  3. the constants came in as a list of strings;
//  4. every listed constant is known;
//  5. the constant count equals the declared arity.
//
// The engine's contextual check is the caller's final step; everything
// CheckCandidate can decide locally is decided here.
func (t *LookupTable) CheckCandidate(idea model.QueryIdea) error {
	if idea.PredicateName == "" {
		return fmt.Errorf("predicate name is not a string")
	}

	arity, known := t.Predicates[idea.PredicateName]
	if !known {
		return fmt.Errorf("unknown predicate %q", idea.PredicateName)
	}

	if idea.ConstantsInvalid {
		return fmt.Errorf("constants for %q is not a list of strings", idea.PredicateName)
	}

	for _, c := range idea.Constants {
		if !t.Constants[c] {
			return fmt.Errorf("unknown constant %q for predicate %q", c, idea.PredicateName)
		}
	}

	if len(idea.Constants) != arity {
		return fmt.Errorf("arity mismatch for %q: declared %d, got %d",
			idea.PredicateName, arity, len(idea.Constants))
	}

	return nil
}

// FormatQuery renders a validated candidate as a query string: Name(c1, c2).
func FormatQuery(idea model.QueryIdea) string {
	if len(idea.Constants) == 0 {
		return idea.PredicateName
	}
	return fmt.Sprintf("%s(%s)", idea.PredicateName, strings.Join(idea.Constants, ", "))
}
