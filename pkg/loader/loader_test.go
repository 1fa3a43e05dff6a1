package loader_test

import (
	"embed"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	translator "github.com/ccapndave/go-translator"
	"github.com/ccapndave/go-translator/pkg/loader"
)

//go:embed testdata
var testdataFS embed.FS

func TestParseJSON(t *testing.T) {
	t.Parallel()

	t.Run("parses a flat object", func(t *testing.T) {
		t.Parallel()

		dict, err := loader.ParseJSON([]byte(`{"Yes": "Oui", "No": "Non"}`))
		require.NoError(t, err)

		got, ok := dict.Get("Yes")
		require.True(t, ok)
		require.Equal(t, "Oui", got)
		require.Equal(t, 2, dict.Len())
	})

	t.Run("rejects non-object input", func(t *testing.T) {
		t.Parallel()

		_, err := loader.ParseJSON([]byte(`["Oui"]`))
		require.ErrorIs(t, err, loader.ErrInvalidFile)
	})

	t.Run("rejects non-string values", func(t *testing.T) {
		t.Parallel()

		_, err := loader.ParseJSON([]byte(`{"Yes": 1}`))
		require.ErrorIs(t, err, loader.ErrInvalidFile)
	})
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses a flat mapping", func(t *testing.T) {
		t.Parallel()

		dict, err := loader.ParseYAML([]byte("Yes: Ja\nNo: Nein\n"))
		require.NoError(t, err)

		got, ok := dict.Get("No")
		require.True(t, ok)
		require.Equal(t, "Nein", got)
	})

	t.Run("rejects non-mapping input", func(t *testing.T) {
		t.Parallel()

		_, err := loader.ParseYAML([]byte("- Oui\n- Non\n"))
		require.ErrorIs(t, err, loader.ErrInvalidFile)
	})
}

func TestEncodeJSON(t *testing.T) {
	t.Parallel()

	original := translator.NewDictionary(map[string]string{
		"Yes":      "Oui",
		"MyNameIs": "Je m'appelle {name}",
	})

	data, err := loader.EncodeJSON(original)
	require.NoError(t, err)

	decoded, err := loader.ParseJSON(data)
	require.NoError(t, err)
	require.Equal(t, original.Entries(), decoded.Entries())
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	t.Run("loads one dictionary per language", func(t *testing.T) {
		t.Parallel()

		subFS, err := fs.Sub(testdataFS, "testdata/translations")
		require.NoError(t, err)

		dicts, err := loader.LoadDir(subFS)
		require.NoError(t, err)
		require.Len(t, dicts, 3)

		yes, ok := dicts["fr"].Get("Yes")
		require.True(t, ok)
		require.Equal(t, "Oui", yes)

		ja, ok := dicts["de"].Get("Yes")
		require.True(t, ok)
		require.Equal(t, "Ja", ja)

		_, ok = dicts["en"].Get("People")
		require.False(t, ok)
	})

	t.Run("loaded dictionaries resolve through a translator", func(t *testing.T) {
		t.Parallel()

		subFS, err := fs.Sub(testdataFS, "testdata/translations")
		require.NoError(t, err)

		dicts, err := loader.LoadDir(subFS)
		require.NoError(t, err)

		tr := translator.New().Push(dicts["fr"])
		lit := translator.NewLiteral("People", translator.WithCount(5))
		require.Equal(t, "Il y a 5 personnes", tr.Tr(lit))
	})

	t.Run("reports undecodable files", func(t *testing.T) {
		t.Parallel()

		subFS, err := fs.Sub(testdataFS, "testdata/invalid")
		require.NoError(t, err)

		_, err = loader.LoadDir(subFS)
		require.ErrorIs(t, err, loader.ErrInvalidFile)
	})
}
