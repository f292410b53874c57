package model

// QueryIdea is a query candidate proposed by the LLM: a predicate applied to
// constants. It is promoted to a validated query string only after passing
// every structural check and the engine's contextual check.
type QueryIdea struct {
	PredicateName string   `json:"predicate_name"`
	Constants     []string `json:"constants"`

	// ConstantsInvalid records that the generator's constants value was not a
	// list of strings. The flag survives projection so validation can reject
	// the candidate with a reason instead of quietly treating it as empty.
	ConstantsInvalid bool `json:"-"`
}

// Verdict classifies the reasoning engine's answer to a query.
type Verdict string

const (
	VerdictAccepted Verdict = "accepted"
	VerdictRejected Verdict = "rejected"
	VerdictUnknown  Verdict = "unknown"
)

// QueryResult pairs an executed query with the engine's verdict and raw output.
type QueryResult struct {
	Query   string  `json:"query"`
	Verdict Verdict `json:"verdict"`
	Raw     string  `json:"raw,omitempty"`
}
