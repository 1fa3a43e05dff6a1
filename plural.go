package translator

import (
	"maps"
	"strconv"
	"strings"
)

// clauseSeparator splits a pluralised template into its singular and plural
// clauses.
const clauseSeparator = "|"

// Pluralize selects the singular or plural clause of a template for the given
// count and substitutes {count} into the chosen clause. A count of exactly 1
// selects the singular clause; every other integer, including 0 and negative
// numbers, selects the plural clause.
//
// The template must contain exactly one "|" separating the two clauses. A
// template with zero or more than one separator yields two empty clauses
// rather than an error; PluralizeStrict rejects such templates instead.
//
// Example:
//
//	Pluralize(5, "Il y a {count} personne|Il y a {count} personnes")
//	returns "Il y a 5 personnes"
func Pluralize(count int, template string) string {
	return pluralize(count, nil, template)
}

// PluralizeStrict behaves like Pluralize but returns ErrMalformedTemplate
// when the template does not split into exactly two clauses. This is a
// deviation from the legacy behaviour of silently producing empty clauses;
// use it when malformed translation files should be surfaced rather than
// absorbed.
func PluralizeStrict(count int, template string) (string, error) {
	singular, plural, ok := splitClauses(template)
	if !ok {
		return "", ErrMalformedTemplate
	}
	return substituteClause(count, nil, singular, plural), nil
}

// pluralize applies clause selection with the literal's other substitution
// values merged in. The count value is only known here, not at the generic
// substitution call site, and both clauses may legitimately reference
// {count}.
func pluralize(count int, values map[string]string, template string) string {
	singular, plural, ok := splitClauses(template)
	if !ok {
		// Legacy quirk: malformed templates degrade to empty clauses.
		singular, plural = "", ""
	}
	return substituteClause(count, values, singular, plural)
}

func substituteClause(count int, values map[string]string, singular, plural string) string {
	merged := make(map[string]string, len(values)+1)
	maps.Copy(merged, values)
	merged["count"] = strconv.Itoa(count)

	if count == 1 {
		return Substitute(merged, singular)
	}
	return Substitute(merged, plural)
}

func splitClauses(template string) (singular, plural string, ok bool) {
	parts := strings.Split(template, clauseSeparator)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
