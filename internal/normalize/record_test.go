package normalize

import (
	"testing"

	"github.com/ppiankov/credo/internal/model"
)

func TestRecord_NormalizesConstantsAndFormulas(t *testing.T) {
	rec := &model.Record{
		Sorts: map[string][]string{
			"person": {"Jean Pierre", "Marie"},
			"place":  {"New York"},
		},
		Predicates: []model.Predicate{
			{Name: "Visits", Args: []string{"person", "place"}},
		},
		Formulas: []string{
			"Visits(Jean Pierre, New York)",
			"Visits(Marie, New York)",
		},
	}

	mapping := Record(rec)

	if got := mapping["Jean Pierre"]; got != "jean_pierre" {
		t.Errorf("Expected jean_pierre, got %q", got)
	}
	if got := mapping["New York"]; got != "new_york" {
		t.Errorf("Expected new_york, got %q", got)
	}

	if rec.Sorts["person"][0] != "jean_pierre" || rec.Sorts["person"][1] != "marie" {
		t.Errorf("Sort constants not normalized: %v", rec.Sorts["person"])
	}

	want := []string{
		"Visits(jean_pierre, new_york)",
		"Visits(marie, new_york)",
	}
	for i, f := range rec.Formulas {
		if f != want[i] {
			t.Errorf("Formula %d = %q, want %q", i, f, want[i])
		}
	}
}

func TestRecord_LongestFirstSubstitution(t *testing.T) {
	// "jean" is a prefix of "jean jr"; substituting short-first would leave
	// the longer original's tail dangling in the formula.
	rec := &model.Record{
		Sorts: map[string][]string{
			"person": {"Jean", "Jean Jr"},
		},
		Formulas: []string{"Knows(Jean Jr, Jean)"},
	}

	Record(rec)

	if rec.Formulas[0] != "Knows(jean_jr, jean)" {
		t.Errorf("Expected Knows(jean_jr, jean), got %q", rec.Formulas[0])
	}
}

func TestRecord_AccentedConstants(t *testing.T) {
	// Token boundaries must hold around non-ASCII letters; a regexp \b would
	// never match "été" and leave the formulas un-rewritten.
	rec := &model.Record{
		Sorts: map[string][]string{
			"season": {"été", "hiver"},
		},
		Predicates: []model.Predicate{
			{Name: "Warmer", Args: []string{"season", "season"}},
		},
		Formulas: []string{"Warmer(été, hiver)", "Hot(été)"},
	}

	mapping := Record(rec)

	if mapping["été"] != "ete" {
		t.Errorf("Expected été -> ete, got %q", mapping["été"])
	}
	if rec.Sorts["season"][0] != "ete" || rec.Sorts["season"][1] != "hiver" {
		t.Errorf("Sort constants not normalized: %v", rec.Sorts["season"])
	}

	want := []string{"Warmer(ete, hiver)", "Hot(ete)"}
	for i, f := range rec.Formulas {
		if f != want[i] {
			t.Errorf("Formula %d = %q, want %q", i, f, want[i])
		}
	}
}

func TestRecord_NoRewriteInsideLongerToken(t *testing.T) {
	rec := &model.Record{
		Sorts:    map[string][]string{"person": {"léa"}},
		Formulas: []string{"Ami(léa, léaz)"},
	}

	Record(rec)

	if rec.Formulas[0] != "Ami(lea, léaz)" {
		t.Errorf("Expected léaz untouched, got %q", rec.Formulas[0])
	}
}

func TestRecord_IdentityMappingSkipped(t *testing.T) {
	rec := &model.Record{
		Sorts:    map[string][]string{"person": {"jean"}},
		Formulas: []string{"Person(jean)"},
	}

	mapping := Record(rec)

	if mapping["jean"] != "jean" {
		t.Errorf("Expected identity mapping, got %q", mapping["jean"])
	}
	if rec.Formulas[0] != "Person(jean)" {
		t.Errorf("Formula must be untouched, got %q", rec.Formulas[0])
	}
}
