package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// DefaultPackage is the package name used when the caller does not supply one.
const DefaultPackage = "translations"

const fileTemplate = `// Code generated by translator-gen. DO NOT EDIT.

package {{.Package}}

import translator "github.com/ccapndave/go-translator"
{{range .Literals}}
// {{.Accessor}} returns the {{printf "%q" .ID}} literal.
func {{.Accessor}}({{.Params}}) translator.Literal {
	return translator.NewLiteral({{printf "%q" .ID}}{{range .Options}},
		{{.}}{{end}})
}
{{end}}`

var accessorTemplate = template.Must(template.New("accessors").Parse(fileTemplate))

type literalModel struct {
	ID       string
	Accessor string
	Params   string
	Options  []string
}

type fileModel struct {
	Package  string
	Literals []literalModel
}

// Generate emits Go source defining one accessor function per literal in the
// spec, formatted with go/format. Literals are emitted in name order so the
// output is deterministic. An empty pkg falls back to DefaultPackage.
//
// When formatting fails, Generate returns the raw unformatted source together
// with an error wrapping ErrFormat so callers can emit both for diagnosis.
func Generate(spec Spec, pkg string) ([]byte, error) {
	if pkg == "" {
		pkg = DefaultPackage
	}

	names := make([]string, 0, len(spec))
	for name := range spec {
		names = append(names, name)
	}
	slices.Sort(names)

	model := fileModel{Package: pkg}
	for _, name := range names {
		model.Literals = append(model.Literals, buildLiteral(name, spec[name]))
	}

	var buf bytes.Buffer
	if err := accessorTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("generator: rendering accessors: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("%w: %s", ErrFormat, err)
	}

	return src, nil
}

func buildLiteral(name string, lit LiteralSpec) literalModel {
	var params []string
	options := make([]string, 0, len(lit.Substitutions)+2)

	if lit.Default != nil {
		options = append(options, "translator.WithDefault("+strconv.Quote(*lit.Default)+")")
	}
	for _, sub := range lit.Substitutions {
		params = append(params, sub+" string")
		options = append(options, "translator.WithSubstitution("+strconv.Quote(sub)+", "+sub+")")
	}
	if lit.Pluralise {
		params = append(params, "count int")
		options = append(options, "translator.WithCount(count)")
	}

	return literalModel{
		ID:       name,
		Accessor: exportName(name),
		Params:   strings.Join(params, ", "),
		Options:  options,
	}
}

// exportName upper-cases the first rune so accessors are exported even when
// the specification uses a lower-case literal name.
func exportName(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
