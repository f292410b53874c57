package model

import "testing"

func TestRecord_Clone_Independent(t *testing.T) {
	orig := &Record{
		Sorts:      map[string][]string{"person": {"jean"}},
		Predicates: []Predicate{{Name: "Loves", Args: []string{"person", "place"}}},
		Formulas:   []string{"Loves(jean, paris)"},
	}

	clone := orig.Clone()
	clone.Sorts["person"][0] = "changed"
	clone.Predicates[0].Args[0] = "changed"
	clone.Formulas[0] = "changed"

	if orig.Sorts["person"][0] != "jean" {
		t.Error("Clone shares sort constants with original")
	}
	if orig.Predicates[0].Args[0] != "person" {
		t.Error("Clone shares predicate args with original")
	}
	if orig.Formulas[0] != "Loves(jean, paris)" {
		t.Error("Clone shares formulas with original")
	}
}

func TestRecord_Clone_PreservesNilness(t *testing.T) {
	rec := &Record{Sorts: map[string][]string{}, Formulas: []string{}}
	clone := rec.Clone()

	if clone.Sorts == nil {
		t.Error("Non-nil empty sorts must stay non-nil")
	}
	if clone.Predicates != nil {
		t.Error("Nil predicates must stay nil")
	}
	if clone.Formulas == nil {
		t.Error("Non-nil empty formulas must stay non-nil")
	}
}

func TestRecord_SortOfConstant_FirstSeenWins(t *testing.T) {
	rec := &Record{
		Sorts: map[string][]string{
			"person": {"alex"},
			"place":  {"alex"}, // same constant filed twice
		},
	}

	owners := rec.SortOfConstant()
	if owners["alex"] == "" {
		t.Fatal("Expected an owner for alex")
	}
	// Exactly one owner, stable across the record's lifetime.
	if owners["alex"] != "person" && owners["alex"] != "place" {
		t.Errorf("Unexpected owner %q", owners["alex"])
	}
}

func TestRecord_Arities(t *testing.T) {
	rec := &Record{
		Predicates: []Predicate{
			{Name: "Loves", Args: []string{"person", "place"}},
			{Name: "Raining", Args: nil},
		},
	}

	arities := rec.Arities()
	if arities["Loves"] != 2 {
		t.Errorf("Expected Loves arity 2, got %d", arities["Loves"])
	}
	if got, ok := arities["Raining"]; !ok || got != 0 {
		t.Errorf("Expected Raining arity 0, got %d (known=%v)", got, ok)
	}
}

func TestRecord_IsEmpty(t *testing.T) {
	if !(&Record{}).IsEmpty() {
		t.Error("Zero record must be empty")
	}
	if (&Record{Formulas: []string{"Raining"}}).IsEmpty() {
		t.Error("Record with a formula must not be empty")
	}
}
