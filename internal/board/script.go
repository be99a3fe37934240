package board

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of selections for one board.
type Script struct {
	// Board names the target board. May be empty for single-board files.
	Board string `yaml:"board,omitempty"`

	// Events are applied in order.
	Events EventList `yaml:"events"`
}

// LoadScript loads and parses a YAML event script from the given path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}

	return ParseScript(data)
}

// ParseScript parses YAML data into a Script.
func ParseScript(data []byte) (*Script, error) {
	var s Script

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script YAML: %w", err)
	}

	return &s, nil
}
