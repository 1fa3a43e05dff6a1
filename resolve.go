package translator

// Fallback is returned when a literal id is absent from every dictionary and
// no compile-time default exists. Resolution is total: callers always receive
// a displayable string, never an error, because a UI string lookup cannot
// practically handle failure mid-render.
const Fallback = "..."

// Template resolves the raw, un-substituted template for a literal: the first
// dictionary in precedence order containing the id wins, then the literal's
// compile-time default, then Fallback.
func (t Translator) Template(lit Literal) string {
	def, hasDefault := lit.Default()
	return t.resolve(lit.ID(), def, hasDefault)
}

// Tr resolves a literal to its final display string: the raw template is
// looked up via Template, then pluralised when the literal carries a count,
// or run through placeholder substitution otherwise.
func (t Translator) Tr(lit Literal) string {
	template := t.Template(lit)
	if n, ok := lit.Count(); ok {
		return pluralize(n, lit.subs, template)
	}
	return Substitute(lit.subs, template)
}

// TrID resolves by a raw string id with no associated typed literal, for ids
// only known at run time. The matched template (or Fallback) is returned
// verbatim: no substitution or pluralisation is applied because no structured
// literal is available.
func (t Translator) TrID(id string) string {
	return t.resolve(id, "", false)
}

func (t Translator) resolve(id, def string, hasDefault bool) string {
	for _, d := range t.dicts {
		if template, ok := d.Get(id); ok {
			return template
		}
	}
	if hasDefault {
		return def
	}
	return Fallback
}
