// ABOUTME: Settings loading with global + project config merge, YAML or TOML by extension
// ABOUTME: Holds widget defaults and the trigger layout rendered by the demo host

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/tui-dropdown/pkg/tui/theme"
)

// Settings holds the merged configuration.
type Settings struct {
	LogLevel string        `yaml:"log_level,omitempty" toml:"log_level"`
	Theme    string        `yaml:"theme,omitempty" toml:"theme"`
	Palette  theme.Palette `yaml:"palette,omitempty" toml:"palette"`
	Defaults Defaults      `yaml:"defaults,omitempty" toml:"defaults"`
	Triggers []Trigger     `yaml:"triggers,omitempty" toml:"triggers"`
}

// Defaults apply to every trigger that does not set its own value.
type Defaults struct {
	Mode         string `yaml:"mode,omitempty" toml:"mode"`
	Positioning  string `yaml:"positioning,omitempty" toml:"positioning"`
	ClickOutside *bool  `yaml:"click_outside,omitempty" toml:"click_outside"`
	ZIndex       int    `yaml:"z_index,omitempty" toml:"z_index"`
	Mount        string `yaml:"mount,omitempty" toml:"mount"`
}

// Trigger describes one trigger button and its overlay content.
type Trigger struct {
	ID           string   `yaml:"id,omitempty" toml:"id"`
	Label        string   `yaml:"label" toml:"label"`
	Row          int      `yaml:"row" toml:"row"`
	Col          int      `yaml:"col" toml:"col"`
	Mode         string   `yaml:"mode,omitempty" toml:"mode"`
	Positioning  string   `yaml:"positioning,omitempty" toml:"positioning"`
	ClickOutside *bool    `yaml:"click_outside,omitempty" toml:"click_outside"`
	Controlled   bool     `yaml:"controlled,omitempty" toml:"controlled"`
	Open         bool     `yaml:"open,omitempty" toml:"open"`
	ZIndex       int      `yaml:"z_index,omitempty" toml:"z_index"`
	Mount        string   `yaml:"mount,omitempty" toml:"mount"`
	Items        []string `yaml:"items,omitempty" toml:"items"`
	Markdown     string   `yaml:"markdown,omitempty" toml:"markdown"`
	MarkdownFile string   `yaml:"markdown_file,omitempty" toml:"markdown_file"`
}

// Load reads and merges the global and project-local settings. Project
// settings override global settings. When explicit is set, only that file is
// read and it must exist. The returned paths are the files worth watching.
func Load(projectRoot, explicit string) (*Settings, []string, error) {
	if explicit != "" {
		s, err := loadFile(explicit)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		ResolveEnvVars(s)
		return s, []string{explicit}, nil
	}

	globalPath := firstExisting(GlobalConfigFiles())
	projectPath := firstExisting(ProjectConfigFiles(projectRoot))

	global, err := loadOptional(globalPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading global config: %w", err)
	}
	project, err := loadOptional(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)

	watch := []string{
		orDefault(globalPath, GlobalConfigFiles()[0]),
		orDefault(projectPath, ProjectConfigFiles(projectRoot)[0]),
	}
	return merged, watch, nil
}

func loadOptional(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, nil
	}
	s, err := loadFile(path)
	if err != nil && os.IsNotExist(err) {
		return &Settings{}, nil
	}
	return s, err
}

// loadFile decodes a settings file. The format follows the extension:
// .toml is TOML, anything else is YAML.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return &s, nil
}

// merge overlays project settings onto global settings. Non-zero project
// values win; a non-empty project trigger list replaces the global one.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}
	result.Palette = theme.Merge(result.Palette, project.Palette)

	d := project.Defaults
	if d.Mode != "" {
		result.Defaults.Mode = d.Mode
	}
	if d.Positioning != "" {
		result.Defaults.Positioning = d.Positioning
	}
	if d.ClickOutside != nil {
		result.Defaults.ClickOutside = d.ClickOutside
	}
	if d.ZIndex != 0 {
		result.Defaults.ZIndex = d.ZIndex
	}
	if d.Mount != "" {
		result.Defaults.Mount = d.Mount
	}

	if len(project.Triggers) > 0 {
		result.Triggers = append([]Trigger(nil), project.Triggers...)
	}

	return &result
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func orDefault(path, fallback string) string {
	if path != "" {
		return path
	}
	return fallback
}
