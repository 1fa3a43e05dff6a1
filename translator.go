package translator

import "slices"

// Translator is an immutable, ordered stack of dictionaries used to resolve
// literals by precedence: the most recently pushed dictionary wins.
//
// A Translator is a plain value; Push and ReplaceTop return new values and
// never mutate the receiver, so Translators are safe for concurrent use
// without coordination.
type Translator struct {
	dicts []Dictionary
}

// New creates an empty Translator containing no dictionaries.
// Resolving against it yields compile-time defaults or the Fallback string.
func New() Translator {
	return Translator{}
}

// Push returns a new Translator with d prepended at the highest precedence.
func (t Translator) Push(d Dictionary) Translator {
	dicts := make([]Dictionary, 0, len(t.dicts)+1)
	dicts = append(dicts, d)
	dicts = append(dicts, t.dicts...)
	return Translator{dicts: dicts}
}

// ReplaceTop returns a new Translator with the highest-precedence dictionary
// replaced by d. On an empty Translator it is equivalent to Push. This models
// swapping the currently loaded language without discarding dictionaries
// pushed beneath it.
func (t Translator) ReplaceTop(d Dictionary) Translator {
	if len(t.dicts) == 0 {
		return t.Push(d)
	}
	dicts := slices.Clone(t.dicts)
	dicts[0] = d
	return Translator{dicts: dicts}
}

// Dictionaries returns a copy of the stack, highest precedence first.
func (t Translator) Dictionaries() []Dictionary {
	return slices.Clone(t.dicts)
}
