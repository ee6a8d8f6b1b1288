package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML catalog override and merges it onto the built-in
// table.
//
// The file may set any subset of:
//
//	abilities:        {Flash: 300, ...}
//	units:            {Aatrox: [120, 100, 80], ...}
//	defaultDuration:  300
//	fallbackUltimate: [100, 80, 60]
func LoadFile(path string) (*Table, error) {
	override, err := ReadOverride(path)
	if err != nil {
		return nil, err
	}

	t := Default()
	t.Merge(override)

	return t, nil
}

// ReadOverride reads a YAML catalog file without merging it, so that it can
// be applied on top of another table.
func ReadOverride(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog document without merging it.
func Parse(data []byte) (*Table, error) {
	override := &Table{}
	if err := yaml.Unmarshal(data, override); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := override.Validate(); err != nil {
		return nil, err
	}

	return override, nil
}

// Validate rejects negative cooldowns.
func (t *Table) Validate() error {
	for name, d := range t.Abilities {
		if d < 0 {
			return fmt.Errorf("ability %s has negative cooldown %d", name, d)
		}
	}

	for unit, cds := range t.Units {
		for _, cd := range cds {
			if cd < 0 {
				return fmt.Errorf("unit %s has negative cooldown %g", unit, cd)
			}
		}
	}

	for _, cd := range t.FallbackUltimate {
		if cd < 0 {
			return fmt.Errorf("fallback ultimate has negative cooldown %g", cd)
		}
	}

	if t.DefaultDuration < 0 {
		return fmt.Errorf("negative default duration %d", t.DefaultDuration)
	}

	return nil
}

// Marshal encodes the table as YAML.
func (t *Table) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
