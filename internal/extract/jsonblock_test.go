package extract

import (
	"encoding/json"
	"testing"
)

func TestJSONBlock_CleanObject(t *testing.T) {
	in := `{"sorts": {"person": ["jean"]}, "predicates": []}`
	block, repaired := JSONBlock(in)
	if block != in {
		t.Errorf("Expected input unchanged, got %q", block)
	}
	if repaired {
		t.Error("Expected repaired=false for valid input")
	}
}

func TestJSONBlock_ProseWrapped(t *testing.T) {
	in := "Sure! Here is the JSON you asked for:\n```json\n" +
		`{"formulas": ["Loves(jean, paris)"]}` + "\n```\nLet me know if you need anything else."
	block, repaired := JSONBlock(in)
	if repaired {
		t.Error("Expected repaired=false")
	}
	if !json.Valid([]byte(block)) {
		t.Fatalf("Expected valid JSON, got %q", block)
	}
	var tree map[string]any
	if err := json.Unmarshal([]byte(block), &tree); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := tree["formulas"]; !ok {
		t.Error("Expected 'formulas' key to survive extraction")
	}
}

func TestJSONBlock_TruncationRepair(t *testing.T) {
	// Completion cut off mid-object: two closers missing.
	in := `{"sorts": {"person": ["jean"]`
	block, repaired := JSONBlock(in)
	if !repaired {
		t.Error("Expected repaired=true for truncated input")
	}
	if !json.Valid([]byte(block)) {
		t.Fatalf("Expected repaired block to be valid JSON, got %q", block)
	}

	var tree map[string]any
	if err := json.Unmarshal([]byte(block), &tree); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	sorts, ok := tree["sorts"].(map[string]any)
	if !ok {
		t.Fatalf("Expected sorts object, got %T", tree["sorts"])
	}
	if _, ok := sorts["person"]; !ok {
		t.Error("Expected 'person' sort to survive repair")
	}
}

func TestJSONBlock_FirstBalancedSpan(t *testing.T) {
	in := `prefix {"a": {"b": 1}} trailing } noise`
	block, repaired := JSONBlock(in)
	if repaired {
		t.Error("Expected repaired=false")
	}
	if block != `{"a": {"b": 1}}` {
		t.Errorf("Expected first balanced span, got %q", block)
	}
}

func TestJSONBlock_NoDelimiter(t *testing.T) {
	in := "I could not produce any JSON, sorry."
	block, repaired := JSONBlock(in)
	if block != in {
		t.Errorf("Expected input passed through unchanged, got %q", block)
	}
	if repaired {
		t.Error("Expected repaired=false")
	}
}

func TestJSONBlock_UnrepairableTruncation(t *testing.T) {
	// Truncated inside a string literal: appending closers cannot fix it, so
	// the partial span comes back and the caller's decode reports the failure.
	in := `{"sorts": {"person": ["je`
	block, repaired := JSONBlock(in)
	if repaired {
		t.Error("Expected repaired=false when appended closers do not help")
	}
	if json.Valid([]byte(block)) {
		t.Errorf("Expected invalid JSON to surface to the caller, got %q", block)
	}
}
