// Package loader decodes translation dictionaries from JSON and YAML files.
//
// A translation file is a flat object mapping literal ids to raw templates:
//
//	{
//	    "Yes": "Oui",
//	    "MyNameIs": "Je m'appelle {name}",
//	    "People": "Il y a {count} personne|Il y a {count} personnes"
//	}
//
// LoadDir reads every {lang}.json / {lang}.yaml / {lang}.yml file in an fs.FS
// and returns one Dictionary per language, ready to be pushed onto a
// Translator:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	dicts, err := loader.LoadDir(translationsFS)
//	if err != nil {
//	    // ...
//	}
//	t := translator.New().Push(dicts["fr"])
//
// This package holds the only file I/O in the module; the translator core
// operates purely on already-decoded values.
package loader
