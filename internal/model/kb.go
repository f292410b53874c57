package model

// Record is the structured belief-set record recovered from LLM output.
// It is the unit that flows through the build pipeline: normalization,
// argument correction and formula filtering all mutate it in place, and it
// becomes immutable once assembled into belief-set text.
type Record struct {
	// Sorts maps a sort name to its declared constants.
	// A constant belongs to at most one sort; duplicates keep the first-seen mapping.
	Sorts map[string][]string `json:"sorts"`

	// Predicates are the declared predicates with their typed argument slots.
	Predicates []Predicate `json:"predicates"`

	// Formulas are opaque formula strings in the engine grammar.
	Formulas []string `json:"formulas"`
}

// Predicate declares a named relation with a fixed arity.
// By convention predicate names start uppercase; each argument slot names a sort.
type Predicate struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

// DeclaredConstants returns the union of all constants across all sorts.
func (r *Record) DeclaredConstants() map[string]bool {
	constants := make(map[string]bool)
	for _, list := range r.Sorts {
		for _, c := range list {
			constants[c] = true
		}
	}
	return constants
}

// SortOfConstant maps each constant to its owning sort (first-seen wins).
func (r *Record) SortOfConstant() map[string]string {
	owners := make(map[string]string)
	for sortName, constants := range r.Sorts {
		for _, c := range constants {
			if _, seen := owners[c]; !seen {
				owners[c] = sortName
			}
		}
	}
	return owners
}

// Arities maps each declared predicate name to its arity.
func (r *Record) Arities() map[string]int {
	arities := make(map[string]int)
	for _, p := range r.Predicates {
		arities[p.Name] = len(p.Args)
	}
	return arities
}

// Clone returns a deep copy of the record. The build retry loop re-runs
// normalization and validation on a fresh copy so attempts stay independent.
func (r *Record) Clone() *Record {
	// Nil and empty are distinct here: validation treats a nil field as a
	// missing key, so the clone preserves nilness exactly.
	clone := &Record{}
	if r.Sorts != nil {
		clone.Sorts = make(map[string][]string, len(r.Sorts))
		for name, constants := range r.Sorts {
			clone.Sorts[name] = append([]string{}, constants...)
		}
	}
	if r.Predicates != nil {
		clone.Predicates = make([]Predicate, len(r.Predicates))
		for i, p := range r.Predicates {
			clone.Predicates[i] = Predicate{Name: p.Name, Args: append([]string{}, p.Args...)}
		}
	}
	if r.Formulas != nil {
		clone.Formulas = append([]string{}, r.Formulas...)
	}
	return clone
}

// IsEmpty reports whether the record declares nothing at all.
func (r *Record) IsEmpty() bool {
	return len(r.Sorts) == 0 && len(r.Predicates) == 0 && len(r.Formulas) == 0
}

// BeliefSet is an assembled, engine-validated belief set in textual form.
type BeliefSet struct {
	Content string `json:"content"`
}
