package translator

import "errors"

// ErrMalformedTemplate is returned by PluralizeStrict when a pluralised
// template does not contain exactly one "|" clause separator.
var ErrMalformedTemplate = errors.New("translator: template must contain exactly one plural separator")
