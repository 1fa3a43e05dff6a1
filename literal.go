package translator

import "maps"

// Literal is a typed reference to a translatable string: a stable id plus
// optional named substitution values and an optional pluralisation count.
//
// Literals are normally constructed by generated accessor functions, one per
// specification entry, so their shape (default, substitution names, count)
// is fixed at generation time.
type Literal struct {
	id         string
	def        string
	subs       map[string]string
	count      int
	hasDefault bool
	hasCount   bool
}

// LiteralOption configures a Literal during construction.
type LiteralOption func(*Literal)

// NewLiteral creates a Literal with the given id and options.
func NewLiteral(id string, opts ...LiteralOption) Literal {
	lit := Literal{id: id}
	for _, opt := range opts {
		opt(&lit)
	}
	return lit
}

// WithDefault sets the compile-time default template used when no dictionary
// in the Translator contains the literal's id.
func WithDefault(template string) LiteralOption {
	return func(lit *Literal) {
		lit.def = template
		lit.hasDefault = true
	}
}

// WithSubstitution adds a single named substitution value.
func WithSubstitution(key, value string) LiteralOption {
	return func(lit *Literal) {
		if lit.subs == nil {
			lit.subs = make(map[string]string)
		}
		lit.subs[key] = value
	}
}

// WithSubstitutions adds all given substitution values. The map is copied.
func WithSubstitutions(values map[string]string) LiteralOption {
	return func(lit *Literal) {
		if lit.subs == nil {
			lit.subs = make(map[string]string, len(values))
		}
		maps.Copy(lit.subs, values)
	}
}

// WithCount marks the literal as pluralised with the given count.
func WithCount(n int) LiteralOption {
	return func(lit *Literal) {
		lit.count = n
		lit.hasCount = true
	}
}

// ID returns the literal's id.
func (lit Literal) ID() string {
	return lit.id
}

// Default returns the compile-time default template, if one was set.
func (lit Literal) Default() (string, bool) {
	return lit.def, lit.hasDefault
}

// Substitutions returns a copy of the literal's substitution values.
func (lit Literal) Substitutions() map[string]string {
	out := make(map[string]string, len(lit.subs))
	maps.Copy(out, lit.subs)
	return out
}

// Count returns the pluralisation count, if one was set.
func (lit Literal) Count() (int, bool) {
	return lit.count, lit.hasCount
}
