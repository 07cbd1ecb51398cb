package conjugation

import "errors"

// Request errors. They are returned wrapped with the offending field and
// value, so callers should test for them with errors.Is.
var (
	// ErrInvalidRoot reports a root with the wrong number of radicals or a
	// radical outside the supported alphabet.
	ErrInvalidRoot = errors.New("invalid root")

	// ErrIllegalStem1Context reports a Stem-I vowel melody that the dialect
	// does not list for the root.
	ErrIllegalStem1Context = errors.New("illegal stem I context")

	// ErrUnsupportedStem reports a stem that the dialect cannot build for
	// the root's category.
	ErrUnsupportedStem = errors.New("unsupported stem")

	// ErrUnsupportedFeature reports a grammatical category that the dialect
	// does not have (dual, feminine plural, jussive, passive) or a
	// combination that does not exist (passive imperative).
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrUnknownDialect reports a dialect name or code that LookupDialect
	// does not know.
	ErrUnknownDialect = errors.New("unknown dialect")

	// ErrInvalidQuery reports a query with a missing or out-of-range field.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrAmbiguousVerbalNoun is returned by VerbalNoun when the verb has
	// more than one attested verbal noun. Use VerbalNouns instead.
	ErrAmbiguousVerbalNoun = errors.New("verb has several verbal nouns")

	// ErrNotImplemented reports a participle or verbal noun pattern for
	// which no attested form is known.
	ErrNotImplemented = errors.New("not implemented")
)

// ErrUnresolvedRule reports a template that did not produce a complete
// skeleton for a legal query. This is a defect in the template tables,
// never a problem with the request.
var ErrUnresolvedRule = errors.New("unresolved conjugation rule")
