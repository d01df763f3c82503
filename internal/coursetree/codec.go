package coursetree

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a course document from a JSON file.
func LoadFile(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course file: %w", err)
	}
	var c Course
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse course file %s: %w", path, err)
	}
	return &c, nil
}

// SaveFile writes the course document to a JSON file, pretty-printed so
// the file stays diffable under version control.
func SaveFile(c *Course, path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal course: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write course file: %w", err)
	}
	return nil
}
