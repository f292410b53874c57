package llm

import "fmt"

// SystemPrompt frames every completion: the model acts as a first-order-logic
// translator emitting strict JSON in the engine's syntax conventions.
const SystemPrompt = `You are an agent specialized in first-order logic (FOL) analysis and reasoning.
You translate natural-language text into FOL structures, generate relevant FOL queries,
and interpret query results. You always answer in the exact format requested.`

// DefinitionsPrompt asks for the sorts and predicates of a text as strict JSON.
func DefinitionsPrompt(text string) string {
	return fmt.Sprintf(`FOL expert: extract sorts and predicates from the text as strict JSON.

Format: {"sorts": {"type": ["const1", "const2"]}, "predicates": [{"name": "PredName", "args": ["type1"]}]}

Rules: sorts/constants in snake_case, predicate names start uppercase.

Example: "Jean loves Paris" -> {"sorts": {"person": ["jean"], "place": ["paris"]}, "predicates": [{"name": "Loves", "args": ["person", "place"]}]}

Text: %s
`, text)
}

// FormulasPrompt asks for the formulas of a text, constrained to the
// already-extracted definitions, as strict JSON.
func FormulasPrompt(text, definitions string) string {
	return fmt.Sprintf(`FOL expert: translate the text into FOL formulas as strict JSON.

Format: {"formulas": ["Pred(const)", "forall X: (Pred1(X) => Pred2(X))"]}

Rules: use ONLY the provided sorts/predicates. Uppercase variables (X,Y). Connectives: !, &&, ||, =>, <=>

Text: %s
Definitions: %s
`, text, definitions)
}

// QueryIdeasPrompt asks for query candidates against an existing belief set
// as strict JSON.
func QueryIdeasPrompt(text, beliefSet string) string {
	return fmt.Sprintf(`FOL expert: generate relevant queries as strict JSON.

Format: {"query_ideas": [{"predicate_name": "PredName", "constants": ["const1"]}]}

Rules: use ONLY predicates/constants from the belief set. Prefer verifiable queries.

Text: %s
Belief set: %s
`, text, beliefSet)
}

// InterpretPrompt asks for a natural-language reading of a batch of query
// results.
func InterpretPrompt(text, beliefSet, queries, results string) string {
	return fmt.Sprintf(`FOL expert: interpret these FOL query results in accessible language.

Text: %s
Belief set: %s
Queries: %s
Results: %s

For each query: goal, status (ACCEPTED/REJECTED), meaning, implications.
Concise general conclusion.
`, text, beliefSet, queries, results)
}
