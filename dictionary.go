package translator

import (
	"encoding/json"
	"maps"
)

// Dictionary is an immutable mapping from literal id to a raw translation
// template. Templates may contain {key} placeholders and a single "|"
// separating a singular clause from a plural clause.
//
// Dictionaries are never mutated after construction; updates produce new
// values, making them safe for concurrent use.
type Dictionary struct {
	entries map[string]string
}

// NewDictionary creates a Dictionary from the given id/template pairs.
// The input map is copied, so later changes to it do not affect the dictionary.
func NewDictionary(entries map[string]string) Dictionary {
	d := Dictionary{entries: make(map[string]string, len(entries))}
	maps.Copy(d.entries, entries)
	return d
}

// Get returns the raw template for the given literal id.
// Absence of an id is a normal, expected case and is reported via ok.
func (d Dictionary) Get(id string) (template string, ok bool) {
	template, ok = d.entries[id]
	return template, ok
}

// Len returns the number of entries in the dictionary.
func (d Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the dictionary's id/template pairs.
func (d Dictionary) Entries() map[string]string {
	out := make(map[string]string, len(d.entries))
	maps.Copy(out, d.entries)
	return out
}

// MarshalJSON encodes the dictionary as a flat JSON object mapping
// literal ids to raw templates. Key order is not guaranteed.
func (d Dictionary) MarshalJSON() ([]byte, error) {
	if d.entries == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.entries)
}

// UnmarshalJSON decodes a flat JSON object into the dictionary.
// Round-trips losslessly with MarshalJSON.
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*d = NewDictionary(entries)
	return nil
}
