package layup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFromFile loads a layup definition from a JSON file. Ply indices are
// renumbered and missing IDs are filled in.
func LoadFromFile(path string) (*Stack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var stack Stack
	if err := json.Unmarshal(data, &stack); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := stack.Validate(); err != nil {
		return nil, err
	}

	for i := range stack.Layers {
		if stack.Layers[i].ID == "" {
			stack.Layers[i].ID = newID()
		}
	}
	stack.Reindex()

	return &stack, nil
}

// SaveToFile writes the layup as indented JSON, creating the directory if needed.
func (s *Stack) SaveToFile(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
