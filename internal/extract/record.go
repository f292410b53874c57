package extract

import (
	"encoding/json"
	"fmt"

	"github.com/ppiankov/credo/internal/model"
)

// The LLM contract is JSON, but the generator is untrusted: values show up
// with the wrong type, entries are missing, lists contain junk. Decoding goes
// through an untyped tree and projects eagerly into the typed record so
// nothing loosely-typed leaks past this package.

// Definitions projects a definitions completion ({"sorts": ..., "predicates": ...})
// into a Record with no formulas. Missing top-level keys are a hard error;
// malformed entries inside them are skipped.
func Definitions(raw string) (*model.Record, error) {
	block, _ := JSONBlock(raw)

	var tree map[string]any
	if err := json.Unmarshal([]byte(block), &tree); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}

	sortsNode, ok := tree["sorts"]
	if !ok {
		return nil, fmt.Errorf("definitions missing %q key", "sorts")
	}
	predsNode, ok := tree["predicates"]
	if !ok {
		return nil, fmt.Errorf("definitions missing %q key", "predicates")
	}

	record := &model.Record{
		Sorts:      projectSorts(sortsNode),
		Predicates: projectPredicates(predsNode),
		Formulas:   []string{},
	}
	return record, nil
}

// Formulas projects a formulas completion ({"formulas": [...]}) into a string
// slice. Non-string entries are dropped.
func Formulas(raw string) ([]string, error) {
	block, _ := JSONBlock(raw)

	var tree map[string]any
	if err := json.Unmarshal([]byte(block), &tree); err != nil {
		return nil, fmt.Errorf("decode formulas: %w", err)
	}

	node, ok := tree["formulas"]
	if !ok {
		return nil, fmt.Errorf("formulas missing %q key", "formulas")
	}

	return stringSlice(node), nil
}

// QueryIdeas projects a query-ideas completion ({"query_ideas": [...]}) into
// candidates. Entries that are not objects are dropped; a candidate with a
// non-string predicate name keeps an empty name, and one whose constants are
// not a list of strings keeps the ConstantsInvalid flag, so downstream
// validation can reject them with a logged reason instead of the whole batch
// failing here.
func QueryIdeas(raw string) ([]model.QueryIdea, error) {
	block, _ := JSONBlock(raw)

	var tree map[string]any
	if err := json.Unmarshal([]byte(block), &tree); err != nil {
		return nil, fmt.Errorf("decode query ideas: %w", err)
	}

	node, ok := tree["query_ideas"]
	if !ok {
		return nil, fmt.Errorf("query ideas missing %q key", "query_ideas")
	}

	list, ok := node.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not a list", "query_ideas")
	}

	var ideas []model.QueryIdea
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := obj["predicate_name"].(string)
		constants, listOK := stringSliceStrict(obj["constants"])
		ideas = append(ideas, model.QueryIdea{
			PredicateName:    name,
			Constants:        constants,
			ConstantsInvalid: !listOK,
		})
	}
	return ideas, nil
}

func projectSorts(node any) map[string][]string {
	sorts := make(map[string][]string)
	obj, ok := node.(map[string]any)
	if !ok {
		return sorts
	}
	for name, constants := range obj {
		sorts[name] = stringSlice(constants)
	}
	return sorts
}

func projectPredicates(node any) []model.Predicate {
	predicates := []model.Predicate{}
	list, ok := node.([]any)
	if !ok {
		return predicates
	}
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, ok := obj["name"].(string)
		if !ok || name == "" {
			continue
		}
		predicates = append(predicates, model.Predicate{
			Name: name,
			Args: stringSlice(obj["args"]),
		})
	}
	return predicates
}

// stringSliceStrict projects an untyped list into its string members and
// reports whether the node really was a list of strings: a missing or
// non-list node clears ok, and so does any non-string member.
func stringSliceStrict(node any) ([]string, bool) {
	list, ok := node.([]any)
	if !ok {
		return []string{}, false
	}
	out := make([]string, 0, len(list))
	valid := true
	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			valid = false
			continue
		}
		out = append(out, s)
	}
	return out, valid
}

// stringSlice projects an untyped list into its string members, dropping
// everything else. A nil or non-list node yields an empty slice.
func stringSlice(node any) []string {
	out := []string{}
	list, ok := node.([]any)
	if !ok {
		return out
	}
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
