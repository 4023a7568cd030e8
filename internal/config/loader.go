package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinition loads a report definition from a YAML file.
// If the file does not exist, it returns ErrDefinitionNotFound so that
// callers can distinguish a bad path from a malformed file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided definition path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDefinitionNotFound
		}
		return nil, err
	}
	return ParseDefinition(data)
}

// ParseDefinition parses a report definition from YAML bytes.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return &def, nil
}
