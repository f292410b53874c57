package model

import "time"

// Report is the complete result of one analysis run: the validated belief
// set, the queries that survived validation, their verdicts, and the
// natural-language interpretation.
type Report struct {
	Subject     string    `json:"subject"`               // Short label for the input (file name, URL slug, or excerpt)
	Source      string    `json:"source"`                // Where the text came from (path, URL, or "stdin")
	GeneratedAt time.Time `json:"generated_at"`          // When the run completed

	Text      string `json:"text,omitempty"`             // The analyzed natural-language text
	BeliefSet string `json:"belief_set"`                 // Assembled belief-set text (engine grammar)

	FormulasKept    int `json:"formulas_kept"`           // Formulas that survived the admission filter
	FormulasDropped int `json:"formulas_dropped"`        // Formulas dropped for referencing undeclared constants

	Consistent *bool `json:"consistent,omitempty"`       // Engine consistency verdict, if checked

	Queries        []QueryResult `json:"queries,omitempty"`
	Interpretation string        `json:"interpretation,omitempty"`
}
