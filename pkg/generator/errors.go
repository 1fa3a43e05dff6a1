package generator

import "errors"

var (
	// ErrInvalidSpec reports a specification whose literal or substitution
	// names cannot be turned into Go identifiers.
	ErrInvalidSpec = errors.New("generator: invalid specification")

	// ErrFormat reports that the generated source could not be formatted.
	// The raw unformatted source is still returned alongside it.
	ErrFormat = errors.New("generator: formatting generated source")
)
