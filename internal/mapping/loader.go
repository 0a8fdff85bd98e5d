package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Workspace is the on-disk form of one mapping session: the business
// fields, the source table columns and the current mapping set.
type Workspace struct {
	Version  string   `yaml:"version"`
	Table    string   `yaml:"table,omitempty"`
	Fields   []Field  `yaml:"fields"`
	Columns  []Column `yaml:"columns"`
	Mappings Set      `yaml:"mappings"`
}

// LoadFile loads and parses a YAML workspace file from the given path.
func LoadFile(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace file %s: %w", path, err)
	}

	ws, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ws, nil
}

// Parse parses YAML data into a Workspace.
func Parse(data []byte) (*Workspace, error) {
	var ws Workspace

	err := yaml.Unmarshal(data, &ws)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workspace YAML: %w", err)
	}

	applyDefaults(&ws)

	return &ws, nil
}

func applyDefaults(ws *Workspace) {
	if ws.Version == "" {
		ws.Version = "1"
	}
}

// Marshal serializes a Workspace to YAML.
func Marshal(ws *Workspace) ([]byte, error) {
	return yaml.Marshal(ws)
}

// WriteFile writes a Workspace to the given path.
func WriteFile(ws *Workspace, path string) error {
	data, err := Marshal(ws)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write workspace file %s: %w", path, err)
	}

	return nil
}

// Column returns the column with the given name.
func (ws *Workspace) Column(name string) (Column, bool) {
	for _, c := range ws.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}
