package extract

import (
	"testing"
)

func TestDefinitions_Basic(t *testing.T) {
	raw := `Here you go:
{"sorts": {"person": ["jean"], "place": ["paris"]},
 "predicates": [{"name": "Loves", "args": ["person", "place"]}]}`

	rec, err := Definitions(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(rec.Sorts) != 2 {
		t.Errorf("Expected 2 sorts, got %d", len(rec.Sorts))
	}
	if got := rec.Sorts["person"]; len(got) != 1 || got[0] != "jean" {
		t.Errorf("Expected person=[jean], got %v", got)
	}
	if len(rec.Predicates) != 1 {
		t.Fatalf("Expected 1 predicate, got %d", len(rec.Predicates))
	}
	if rec.Predicates[0].Name != "Loves" || len(rec.Predicates[0].Args) != 2 {
		t.Errorf("Unexpected predicate: %+v", rec.Predicates[0])
	}
	if rec.Formulas == nil || len(rec.Formulas) != 0 {
		t.Errorf("Expected empty non-nil formulas, got %v", rec.Formulas)
	}
}

func TestDefinitions_MissingKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no sorts", `{"predicates": []}`},
		{"no predicates", `{"sorts": {}}`},
		{"not json", `the model refused`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Definitions(tt.raw); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestDefinitions_MalformedEntriesSkipped(t *testing.T) {
	// Junk inside lists must be dropped, not fail the whole record.
	raw := `{"sorts": {"person": ["jean", 42, null]},
		"predicates": [{"name": "Loves", "args": ["person"]}, "junk", {"args": ["x"]}]}`

	rec, err := Definitions(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := rec.Sorts["person"]; len(got) != 1 || got[0] != "jean" {
		t.Errorf("Expected non-string constants dropped, got %v", got)
	}
	if len(rec.Predicates) != 1 {
		t.Errorf("Expected junk predicates dropped, got %+v", rec.Predicates)
	}
}

func TestFormulas_Basic(t *testing.T) {
	raw := `{"formulas": ["Loves(jean, paris)", 7, "forall X: (Person(X))"]}`

	formulas, err := Formulas(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(formulas) != 2 {
		t.Fatalf("Expected 2 formulas (non-string dropped), got %d", len(formulas))
	}
	if formulas[0] != "Loves(jean, paris)" {
		t.Errorf("Unexpected first formula: %q", formulas[0])
	}
}

func TestFormulas_MissingKey(t *testing.T) {
	if _, err := Formulas(`{"sorts": {}}`); err == nil {
		t.Error("Expected error for missing formulas key")
	}
}

func TestQueryIdeas_Basic(t *testing.T) {
	raw := `{"query_ideas": [
		{"predicate_name": "Loves", "constants": ["jean", "paris"]},
		"junk",
		{"predicate_name": 42, "constants": ["jean"]}
	]}`

	ideas, err := QueryIdeas(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ideas) != 2 {
		t.Fatalf("Expected 2 ideas (non-object dropped), got %d", len(ideas))
	}
	if ideas[0].PredicateName != "Loves" || len(ideas[0].Constants) != 2 {
		t.Errorf("Unexpected first idea: %+v", ideas[0])
	}
	if ideas[0].ConstantsInvalid {
		t.Error("Well-formed constants must not be flagged")
	}
	// Non-string name survives as an empty name for downstream rejection.
	if ideas[1].PredicateName != "" {
		t.Errorf("Expected empty name for non-string predicate_name, got %q", ideas[1].PredicateName)
	}
}

func TestQueryIdeas_MalformedConstantsFlagged(t *testing.T) {
	raw := `{"query_ideas": [
		{"predicate_name": "Raining", "constants": "junk"},
		{"predicate_name": "Cloudy"},
		{"predicate_name": "Loves", "constants": ["jean", 7]}
	]}`

	ideas, err := QueryIdeas(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ideas) != 3 {
		t.Fatalf("Expected 3 ideas, got %d", len(ideas))
	}

	if !ideas[0].ConstantsInvalid {
		t.Error("Non-list constants must be flagged")
	}
	if !ideas[1].ConstantsInvalid {
		t.Error("Missing constants must be flagged")
	}
	if !ideas[2].ConstantsInvalid {
		t.Error("Non-string member must flag the candidate")
	}
	// The string members still project, so the rejection can name them.
	if len(ideas[2].Constants) != 1 || ideas[2].Constants[0] != "jean" {
		t.Errorf("Unexpected constants: %v", ideas[2].Constants)
	}
}

func TestQueryIdeas_NotAList(t *testing.T) {
	if _, err := QueryIdeas(`{"query_ideas": {"predicate_name": "Loves"}}`); err == nil {
		t.Error("Expected error when query_ideas is not a list")
	}
}
