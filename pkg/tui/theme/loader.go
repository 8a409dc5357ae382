// ABOUTME: YAML theme file loading and name-or-path resolution
// ABOUTME: Unset palette fields inherit from the base theme so every role has a value

package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML theme file. Missing palette fields fall back to
// DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	return &Theme{
		Name:    t.Name,
		Palette: Merge(DefaultPalette(), t.Palette),
	}, nil
}

// Resolve returns the built-in theme called nameOrPath, or loads it as a
// file path. The overrides are merged on top of the result.
func Resolve(nameOrPath string, overrides Palette) (*Theme, error) {
	if nameOrPath == "" {
		nameOrPath = "default"
	}
	t, ok := Builtin(nameOrPath)
	if !ok {
		var err error
		t, err = LoadFile(nameOrPath)
		if err != nil {
			return nil, err
		}
	}
	t.Palette = Merge(t.Palette, overrides)
	return t, nil
}
