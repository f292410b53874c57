package extract

import (
	"encoding/json"
	"strings"
)

// JSONBlock recovers the first JSON object embedded in raw LLM output.
//
// Completions routinely wrap the JSON in prose, code fences, or cut it off
// mid-object. The recovery strategy, in order:
//
//  1. Take the span from the first '{' to the last '}' and accept it if it
//     parses.
//  2. Assume truncation: scan forward from the first '{' counting brace
//     nesting and take the first balanced span.
//  3. If the braces never balance, append the missing closers and accept the
//     repaired span if it parses.
//
// The returned repaired flag signals that closers were appended (step 3).
// JSONBlock never fails: with no '{' at all it returns the input unchanged
// and the caller's JSON decode reports the failure.
func JSONBlock(text string) (block string, repaired bool) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return text, false
	}

	if end := strings.LastIndexByte(text, '}'); end > start {
		candidate := text[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, false
		}
	}

	partial := text[start:]

	// Scan for the first well-balanced span.
	open := 0
	validEnd := len(partial)
	for i := 0; i < len(partial); i++ {
		switch partial[i] {
		case '{':
			open++
		case '}':
			open--
			if open == 0 {
				validEnd = i + 1
				i = len(partial)
			}
		}
	}

	if open > 0 {
		candidate := partial[:validEnd] + strings.Repeat("}", open)
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}

	return partial[:validEnd], false
}
