package translator

import (
	"regexp"
	"slices"
)

// Substitute replaces {key} placeholders in the template with values from the
// provided map. Whitespace inside the braces is tolerated, so "{ name }" and
// "{name}" both match. Placeholders with no corresponding value are left
// verbatim, and values with no corresponding placeholder are ignored.
//
// Keys are applied in sorted order so the result is deterministic per input.
//
// Example:
//
//	template: "Je m'appelle {name}"
//	values:   map[string]string{"name": "Dave"}
//	returns:  "Je m'appelle Dave"
func Substitute(values map[string]string, template string) string {
	if len(values) == 0 {
		return template
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	result := template
	for _, key := range keys {
		pattern := regexp.MustCompile(`\{\s*` + regexp.QuoteMeta(key) + `\s*\}`)
		result = pattern.ReplaceAllLiteralString(result, values[key])
	}

	return result
}
