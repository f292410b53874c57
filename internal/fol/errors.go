package fol

// Kind classifies a structural or referential integrity failure.
type Kind string

const (
	KindSchema              Kind = "schema_violation"
	KindUndeclaredPredicate Kind = "undeclared_predicate"
	KindArityMismatch       Kind = "arity_mismatch"
	KindUndeclaredConstant  Kind = "undeclared_constant"
	KindUnboundVariable     Kind = "unbound_variable"
)

// ValidationError reports the first integrity rule a record violates, with a
// human-readable explanation naming the offending formula.
type ValidationError struct {
	Kind Kind
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
