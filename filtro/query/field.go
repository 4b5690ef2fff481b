package query

import "context"

// Validation is the outcome of checking candidate values against a field's rules.
// A rejection is data, not an error: Accepted is false and Message explains why
// in user-facing terms.
type Validation struct {
	Accepted bool
	Message  string
}

// ValidateFunc checks the values a query binds to a field (e.g. product codes
// after "produto é ..."). It may look the values up in an external catalog, so
// it takes a context; the lexer itself never calls it.
type ValidateFunc func(ctx context.Context, values []string) (Validation, error)

// FieldMatcher is the rule for recognizing one queryable field in the input.
// Rather than a fixed keyword list, a matcher declares which runes may appear
// in an occurrence of the field's name; the lexer greedily consumes a run of
// admissible runes. Matchers are tried in registration order and the first one
// that consumes at least one rune wins.
//
// Note the rule is deliberately weaker than exact-name matching: any run drawn
// from the field's rune set lexes as that field, including reorderings and
// repetitions of its letters. New fields are added purely by configuration.
type FieldMatcher struct {
	Name     string
	Kind     TokenKind
	Runes    func(rune) bool
	Validate ValidateFunc
}

// NewFieldMatcher builds an Ident-producing matcher whose rune class is the
// set of runes in the field's own name.
func NewFieldMatcher(name string, validate ValidateFunc) FieldMatcher {
	return FieldMatcher{
		Name:     name,
		Kind:     TokIdent,
		Runes:    RunesOf(name),
		Validate: validate,
	}
}

// RunesOf returns a predicate accepting exactly the runes that occur in name.
func RunesOf(name string) func(rune) bool {
	set := make(map[rune]bool, len(name))
	for _, r := range name {
		set[r] = true
	}
	return func(r rune) bool { return set[r] }
}
