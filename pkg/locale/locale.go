package locale

import "golang.org/x/text/language"

// Match parses an Accept-Language header and returns the entry from available
// that best matches it, so callers can pick which translation dictionary to
// load. Quality values (q=0.9) and region fallbacks ("en-US" matching "en")
// are handled by the BCP 47 matcher.
//
// The first available language is returned when the header is empty, cannot
// be parsed, or matches nothing. An empty string is returned only when
// available itself is empty.
func Match(acceptLanguage string, available []string) string {
	if len(available) == 0 {
		return ""
	}

	supported := make([]language.Tag, 0, len(available))
	names := make([]string, 0, len(available))
	for _, lang := range available {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		names = append(names, lang)
	}
	if len(supported) == 0 {
		return available[0]
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return names[0]
	}

	matcher := language.NewMatcher(supported)
	_, index, conf := matcher.Match(desired...)
	if conf == language.No {
		return names[0]
	}

	return names[index]
}
