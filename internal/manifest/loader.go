package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied to optional manifest fields.
const (
	DefaultVersion = "1"
	DefaultSuffix  = "_hlist.go"
)

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	ApplyDefaults(&m)

	return &m, nil
}

// ApplyDefaults fills in default values for optional fields.
func ApplyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = DefaultVersion
	}

	if m.Options.Suffix == "" {
		m.Options.Suffix = DefaultSuffix
	}
}

// Marshal serializes a Manifest to YAML.
func Marshal(m *Manifest) ([]byte, error) {
	return yaml.Marshal(m)
}

// WriteFile writes a Manifest to the given path.
func WriteFile(m *Manifest, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
