// ABOUTME: Tests for config loading, merging, and format selection by extension
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	off := false
	global := &Settings{
		LogLevel: "info",
		Theme:    "dark",
		Defaults: Defaults{Mode: "hover", Positioning: "left", ZIndex: 10},
		Triggers: []Trigger{{ID: "a", Label: "A"}},
	}
	project := &Settings{
		Theme:    "light",
		Defaults: Defaults{Mode: "click", ClickOutside: &off},
	}

	result := merge(global, project)

	if result.Theme != "light" {
		t.Errorf("Theme = %q, want %q", result.Theme, "light")
	}
	if result.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", result.LogLevel, "info")
	}
	if result.Defaults.Mode != "click" {
		t.Errorf("Defaults.Mode = %q, want click", result.Defaults.Mode)
	}
	if result.Defaults.Positioning != "left" {
		t.Errorf("Defaults.Positioning = %q, want left", result.Defaults.Positioning)
	}
	if result.Defaults.ZIndex != 10 {
		t.Errorf("Defaults.ZIndex = %d, want 10", result.Defaults.ZIndex)
	}
	if result.Defaults.ClickOutside == nil || *result.Defaults.ClickOutside {
		t.Error("expected ClickOutside=false from project")
	}
	if len(result.Triggers) != 1 || result.Triggers[0].ID != "a" {
		t.Errorf("Triggers = %+v, want global triggers kept", result.Triggers)
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	if result := merge(nil, nil); result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestMerge_ProjectTriggersReplace(t *testing.T) {
	t.Parallel()

	global := &Settings{Triggers: []Trigger{{ID: "a"}, {ID: "b"}}}
	project := &Settings{Triggers: []Trigger{{ID: "c"}}}

	result := merge(global, project)
	if len(result.Triggers) != 1 || result.Triggers[0].ID != "c" {
		t.Errorf("Triggers = %+v, want only project trigger", result.Triggers)
	}
}

func TestMerge_Palette(t *testing.T) {
	t.Parallel()

	global := &Settings{}
	global.Palette.Accent = "1"
	global.Palette.Border = "2"
	project := &Settings{}
	project.Palette.Accent = "9"

	result := merge(global, project)
	if result.Palette.Accent != "9" || result.Palette.Border != "2" {
		t.Errorf("Palette = %+v, want accent override with border kept", result.Palette)
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	_, err := loadFile("/nonexistent/path/dropdown.yaml")
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dropdown.yaml")
	writeFile(t, path, `
log_level: debug
defaults:
  mode: click
  click_outside: false
triggers:
  - id: file
    label: File
    row: 1
    col: 2
    items: [Open, Save]
`)

	s, err := loadFile(path)
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", s.LogLevel)
	}
	if s.Defaults.Mode != "click" {
		t.Errorf("Defaults.Mode = %q, want click", s.Defaults.Mode)
	}
	if s.Defaults.ClickOutside == nil || *s.Defaults.ClickOutside {
		t.Error("expected click_outside=false")
	}
	if len(s.Triggers) != 1 {
		t.Fatalf("len(Triggers) = %d, want 1", len(s.Triggers))
	}
	tr := s.Triggers[0]
	if tr.ID != "file" || tr.Row != 1 || tr.Col != 2 || len(tr.Items) != 2 {
		t.Errorf("trigger = %+v", tr)
	}
}

func TestLoadFile_TOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dropdown.toml")
	writeFile(t, path, `
theme = "light"

[defaults]
positioning = "right"
z_index = 5

[[triggers]]
id = "help"
label = "Help"
markdown = "# Help"
`)

	s, err := loadFile(path)
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if s.Theme != "light" {
		t.Errorf("Theme = %q, want light", s.Theme)
	}
	if s.Defaults.Positioning != "right" || s.Defaults.ZIndex != 5 {
		t.Errorf("Defaults = %+v", s.Defaults)
	}
	if len(s.Triggers) != 1 || s.Triggers[0].Markdown != "# Help" {
		t.Errorf("Triggers = %+v", s.Triggers)
	}
}

func TestLoadFile_ParseError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dropdown.yaml")
	writeFile(t, path, "triggers: [unclosed")

	_, err := loadFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %v, want it to mention parsing", err)
	}
}

func TestLoad_Explicit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "theme: mono\n")

	s, paths, err := Load(t.TempDir(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "mono" {
		t.Errorf("Theme = %q, want mono", s.Theme)
	}
	if len(paths) != 1 || paths[0] != path {
		t.Errorf("paths = %v, want [%s]", paths, path)
	}
}

func TestLoad_ExplicitMissing(t *testing.T) {
	t.Parallel()

	if _, _, err := Load(t.TempDir(), "/nonexistent/dropdown.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_GlobalAndProject(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	writeFile(t, filepath.Join(GlobalDir(), "dropdown.yaml"), `
theme: dark
defaults:
  mode: click
`)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".dropdown.toml"), `
theme = "light"
`)

	s, paths, err := Load(project, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "light" {
		t.Errorf("Theme = %q, want project override light", s.Theme)
	}
	if s.Defaults.Mode != "click" {
		t.Errorf("Defaults.Mode = %q, want global click", s.Defaults.Mode)
	}
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
	if !strings.HasSuffix(paths[1], ".dropdown.toml") {
		t.Errorf("paths[1] = %q, want the project toml file", paths[1])
	}
}

func TestLoad_NoFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	s, paths, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s == nil {
		t.Fatal("expected empty settings, got nil")
	}
	if len(paths) != 2 {
		t.Errorf("len(paths) = %d, want default watch paths", len(paths))
	}
}

func TestLoad_ProjectParseError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".dropdown.yaml"), "defaults: [")

	_, _, err := Load(project, "")
	if err == nil || !strings.Contains(err.Error(), "project config") {
		t.Errorf("err = %v, want project config parse error", err)
	}
}
