package fol

import (
	"testing"

	"github.com/ppiankov/credo/internal/model"
)

func TestCorrectPredicateArgs(t *testing.T) {
	rec := &model.Record{
		Sorts: map[string][]string{
			"person": {"jean"},
			"place":  {"paris"},
		},
		Predicates: []model.Predicate{
			// Generator filed constants where sorts belong.
			{Name: "Loves", Args: []string{"jean", "paris"}},
			// Already correct; must be untouched.
			{Name: "Person", Args: []string{"person"}},
		},
	}

	corrected := CorrectPredicateArgs(rec)

	if corrected != 2 {
		t.Errorf("Expected 2 corrected slots, got %d", corrected)
	}
	if got := rec.Predicates[0].Args; got[0] != "person" || got[1] != "place" {
		t.Errorf("Expected [person place], got %v", got)
	}
	if rec.Predicates[1].Args[0] != "person" {
		t.Errorf("Correct slot must be untouched, got %v", rec.Predicates[1].Args)
	}
}

func TestCorrectPredicateArgs_UnresolvableKept(t *testing.T) {
	rec := &model.Record{
		Sorts: map[string][]string{"person": {"jean"}},
		Predicates: []model.Predicate{
			{Name: "Visits", Args: []string{"atlantis"}},
		},
	}

	corrected := CorrectPredicateArgs(rec)

	if corrected != 0 {
		t.Errorf("Expected 0 corrections, got %d", corrected)
	}
	if rec.Predicates[0].Args[0] != "atlantis" {
		t.Errorf("Unresolvable slot must be kept as-is, got %v", rec.Predicates[0].Args)
	}
}

func TestCorrectPredicateArgs_Idempotent(t *testing.T) {
	rec := &model.Record{
		Sorts: map[string][]string{"person": {"jean"}},
		Predicates: []model.Predicate{
			{Name: "Person", Args: []string{"jean"}},
		},
	}

	if first := CorrectPredicateArgs(rec); first != 1 {
		t.Fatalf("Expected 1 correction on first pass, got %d", first)
	}
	if second := CorrectPredicateArgs(rec); second != 0 {
		t.Errorf("Expected 0 corrections on second pass, got %d", second)
	}
}
