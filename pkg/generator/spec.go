package generator

import (
	"encoding/json"
	"fmt"
	"go/token"
)

// Spec is a code generation specification: a mapping from literal name to the
// shape of that literal. It drives both the generated accessor functions and
// the ids expected in runtime translation files.
type Spec map[string]LiteralSpec

// LiteralSpec describes a single translatable literal.
type LiteralSpec struct {
	// Default is the compile-time default template, used when no loaded
	// dictionary contains the literal's id. Optional.
	Default *string `json:"default,omitempty"`

	// Substitutions lists the placeholder names the literal's template may
	// reference. Each becomes a string parameter of the generated accessor.
	Substitutions []string `json:"substitutions,omitempty"`

	// Pluralise marks the literal's template as singular|plural. The
	// generated accessor gains an int count parameter.
	Pluralise bool `json:"pluralise,omitempty"`
}

// ParseSpec decodes and validates a JSON specification. Literal names must be
// valid Go identifiers (they become accessor function names); substitution
// names must be valid Go identifiers (they become parameter names), distinct
// within a literal, and must not be "count" on a pluralised literal, where
// the count parameter already claims that name.
func ParseSpec(data []byte) (Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("generator: parsing specification: %w", err)
	}

	for name, lit := range spec {
		if !token.IsIdentifier(name) {
			return nil, fmt.Errorf("%w: literal name %q is not a valid identifier", ErrInvalidSpec, name)
		}

		seen := make(map[string]bool, len(lit.Substitutions))
		for _, sub := range lit.Substitutions {
			if !token.IsIdentifier(sub) {
				return nil, fmt.Errorf("%w: literal %q: substitution name %q is not a valid identifier", ErrInvalidSpec, name, sub)
			}
			if seen[sub] {
				return nil, fmt.Errorf("%w: literal %q: duplicate substitution name %q", ErrInvalidSpec, name, sub)
			}
			if lit.Pluralise && sub == "count" {
				return nil, fmt.Errorf("%w: literal %q: substitution name \"count\" is reserved for pluralised literals", ErrInvalidSpec, name)
			}
			seen[sub] = true
		}
	}

	return spec, nil
}
