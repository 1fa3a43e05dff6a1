package loader

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	translator "github.com/ccapndave/go-translator"
)

// ParseJSON decodes a flat JSON object mapping literal ids to raw templates
// into a Dictionary.
func ParseJSON(data []byte) (translator.Dictionary, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return translator.Dictionary{}, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return translator.NewDictionary(entries), nil
}

// ParseYAML decodes a flat YAML mapping from literal ids to raw templates
// into a Dictionary.
func ParseYAML(data []byte) (translator.Dictionary, error) {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return translator.Dictionary{}, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return translator.NewDictionary(entries), nil
}

// EncodeJSON encodes a Dictionary as a flat JSON object. The output
// round-trips losslessly through ParseJSON; key order is not guaranteed.
func EncodeJSON(d translator.Dictionary) ([]byte, error) {
	return json.Marshal(d)
}

// LoadDir walks an fs.FS for translation files and returns one Dictionary per
// language, keyed by the file's base name.
//
// File convention: {lang}.json, {lang}.yaml, or {lang}.yml, at any depth.
// When the same language appears in multiple files, entries from later files
// (in walk order) override earlier ones.
func LoadDir(fsys fs.FS) (map[string]translator.Dictionary, error) {
	dicts := make(map[string]translator.Dictionary)

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))

		var parse func([]byte) (translator.Dictionary, error)
		switch ext {
		case ".json":
			parse = ParseJSON
		case ".yaml", ".yml":
			parse = ParseYAML
		default:
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		dict, err := parse(data)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", filePath, err)
		}

		lang := strings.TrimSuffix(path.Base(filePath), ext)
		if existing, ok := dicts[lang]; ok {
			merged := existing.Entries()
			for id, template := range dict.Entries() {
				merged[id] = template
			}
			dict = translator.NewDictionary(merged)
		}
		dicts[lang] = dict

		return nil
	})
	if err != nil {
		return nil, err
	}

	return dicts, nil
}
