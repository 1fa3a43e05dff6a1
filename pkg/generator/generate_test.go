package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ccapndave/go-translator/pkg/generator"
)

func strPtr(s string) *string { return &s }

func TestGenerate(t *testing.T) {
	t.Parallel()

	spec := generator.Spec{
		"Yes": {Default: strPtr("Yes")},
		"MyNameIs": {
			Default:       strPtr("My name is {name}"),
			Substitutions: []string{"name"},
		},
		"People": {
			Default:   strPtr("There is {count} person|There are {count} people"),
			Pluralise: true,
		},
		"bareID": {},
	}

	src, err := generator.Generate(spec, "translations")
	require.NoError(t, err)
	out := string(src)

	t.Run("emits the package clause and import", func(t *testing.T) {
		t.Parallel()
		require.Contains(t, out, "// Code generated by translator-gen. DO NOT EDIT.")
		require.Contains(t, out, "package translations")
		require.Contains(t, out, `import translator "github.com/ccapndave/go-translator"`)
	})

	t.Run("emits a plain accessor", func(t *testing.T) {
		t.Parallel()
		require.Contains(t, out, "func Yes() translator.Literal {")
		require.Contains(t, out, `translator.NewLiteral("Yes",`)
		require.Contains(t, out, `translator.WithDefault("Yes")`)
	})

	t.Run("emits substitution parameters", func(t *testing.T) {
		t.Parallel()
		require.Contains(t, out, "func MyNameIs(name string) translator.Literal {")
		require.Contains(t, out, `translator.WithSubstitution("name", name)`)
	})

	t.Run("emits a count parameter for pluralised literals", func(t *testing.T) {
		t.Parallel()
		require.Contains(t, out, "func People(count int) translator.Literal {")
		require.Contains(t, out, "translator.WithCount(count)")
	})

	t.Run("exports lower-case literal names but keeps the id", func(t *testing.T) {
		t.Parallel()
		require.Contains(t, out, "func BareID() translator.Literal {")
		require.Contains(t, out, `translator.NewLiteral("bareID")`)
	})
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	spec := generator.Spec{
		"B": {},
		"A": {},
		"C": {},
	}

	first, err := generator.Generate(spec, "")
	require.NoError(t, err)

	second, err := generator.Generate(spec, "")
	require.NoError(t, err)

	require.Equal(t, string(first), string(second))
	require.Less(t, 0, len(first))

	out := string(first)
	require.Contains(t, out, "package "+generator.DefaultPackage)
	require.Contains(t, out, "func A()")
	require.Contains(t, out, "func B()")
	require.Contains(t, out, "func C()")
	require.Less(t, strings.Index(out, "func A()"), strings.Index(out, "func B()"))
	require.Less(t, strings.Index(out, "func B()"), strings.Index(out, "func C()"))
}

func TestGenerateFormatFailureReturnsRawSource(t *testing.T) {
	t.Parallel()

	src, err := generator.Generate(generator.Spec{"Yes": {}}, "not a package name")
	require.ErrorIs(t, err, generator.ErrFormat)
	require.Contains(t, string(src), "package not a package name")
}
