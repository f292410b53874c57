package fol

import (
	"strings"
	"testing"

	"github.com/ppiankov/credo/internal/model"
)

func TestAssemble(t *testing.T) {
	rec := &model.Record{
		Sorts: map[string][]string{
			"person": {"jean", "marie"},
			"place":  {"paris"},
		},
		Predicates: []model.Predicate{
			{Name: "Loves", Args: []string{"person", "place"}},
			{Name: "Raining", Args: nil},
		},
		Formulas: []string{"Loves(jean, paris);", "Loves(marie, paris)"},
	}

	got := Assemble(rec)

	want := strings.Join([]string{
		"person = { jean, marie }",
		"place = { paris }",
		"type(Loves(person, place))",
		"type(Raining)",
		"",
		"Loves(jean, paris)",
		"Loves(marie, paris)",
	}, "\n")

	if got != want {
		t.Errorf("Assemble mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestAssemble_EmptySortSkipped(t *testing.T) {
	rec := &model.Record{
		Sorts: map[string][]string{
			"person": {"jean"},
			"ghost":  {},
		},
	}

	got := Assemble(rec)
	if strings.Contains(got, "ghost") {
		t.Errorf("Empty sort must be skipped, got:\n%s", got)
	}
}

func TestAssemble_EmptyRecord(t *testing.T) {
	rec := &model.Record{
		Sorts:    map[string][]string{},
		Formulas: []string{},
	}
	if got := Assemble(rec); got != "" {
		t.Errorf("Empty record must assemble to empty string, got %q", got)
	}
}

func TestAssemble_NoBlankSeparatorWithoutDeclarations(t *testing.T) {
	rec := &model.Record{
		Sorts:    map[string][]string{},
		Formulas: []string{"Raining"},
	}
	if got := Assemble(rec); got != "Raining" {
		t.Errorf("Expected bare formula, got %q", got)
	}
}
