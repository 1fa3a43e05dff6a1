// Package translator provides runtime-loadable internationalisation built on
// immutable values: an ordered stack of translation dictionaries and a total
// resolution algorithm that never fails a string lookup.
//
// Translations are raw templates keyed by literal id. Resolution walks the
// dictionary stack in precedence order (most recently pushed first), falls
// back to a compile-time default when no dictionary matches, and finally to
// the "..." placeholder, so a render path always receives a displayable
// string even when runtime-loaded translations are incomplete.
//
// # Basic Usage
//
// Build a Translator by pushing dictionaries, then resolve literals:
//
//	t := translator.New().Push(translator.NewDictionary(map[string]string{
//	    "Yes": "Oui",
//	    "MyNameIs": "Je m'appelle {name}",
//	}))
//
//	t.Tr(translator.NewLiteral("Yes", translator.WithDefault("Yes")))
//	// Output: "Oui"
//
//	t.Tr(translator.NewLiteral("MyNameIs",
//	    translator.WithSubstitution("name", "Dave")))
//	// Output: "Je m'appelle Dave"
//
// Literals are normally constructed by accessor functions emitted by the
// translator-gen command from a JSON specification, so ids, defaults,
// substitution names, and pluralisation flags stay in a single place.
//
// # Placeholders
//
// Templates reference substitution values as {key}; whitespace inside the
// braces is tolerated, so "{ key }" matches too. Unmatched placeholders are
// left verbatim and surplus values are ignored.
//
// # Pluralisation
//
// A pluralised template carries a singular and a plural clause separated by
// "|". The count selects the clause (exactly 1 is singular, everything else
// plural) and is substituted as {count} into whichever clause was chosen:
//
//	t.Tr(translator.NewLiteral("People",
//	    translator.WithDefault("Il y a {count} personne|Il y a {count} personnes"),
//	    translator.WithCount(5)))
//	// Output: "Il y a 5 personnes"
//
// A template that does not split into exactly two clauses silently yields two
// empty clauses, preserving legacy behaviour; PluralizeStrict reports such
// templates as ErrMalformedTemplate instead.
//
// # Updating Languages
//
// Push adds a dictionary at the highest precedence; ReplaceTop swaps the
// current top dictionary, which models switching the loaded language while
// keeping any dictionaries stacked beneath it. Both return new Translator
// values.
//
// # Thread Safety
//
// Every type in this package is an immutable value and every operation is a
// pure function, so Translators, Dictionaries, and Literals may be shared
// across goroutines without synchronization. Loading dictionaries from files
// or the network is the caller's concern; see the loader package.
package translator
