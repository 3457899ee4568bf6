package leveldata

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a JSON entity array, the format the editor exports.
func Decode(r io.Reader) ([]Entity, error) {
	var entities []Entity
	if err := json.NewDecoder(r).Decode(&entities); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	for i, e := range entities {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}
	return entities, nil
}

// Encode writes entities as an indented JSON array.
func Encode(w io.Writer, entities []Entity) error {
	for i, e := range entities {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
	}
	if entities == nil {
		entities = []Entity{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entities); err != nil {
		return fmt.Errorf("encode entities: %w", err)
	}
	return nil
}
