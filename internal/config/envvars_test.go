// ABOUTME: Tests for ${VAR} expansion in settings string fields
// ABOUTME: Uses t.Setenv, so tests in this file are not parallel

package config

import "testing"

func TestExpandEnv(t *testing.T) {
	t.Setenv("DROPDOWN_TEST_USER", "ada")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"hi ${DROPDOWN_TEST_USER}", "hi ada"},
		{"${DROPDOWN_TEST_UNSET_VAR}x", "x"},
		{"$DROPDOWN_TEST_USER", "$DROPDOWN_TEST_USER"},
	}
	for _, tt := range tests {
		if got := expandEnv(tt.in); got != tt.want {
			t.Errorf("expandEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("DROPDOWN_TEST_DIR", "/tmp/panels")

	s := &Settings{
		Theme: "${DROPDOWN_TEST_DIR}/theme.yaml",
		Triggers: []Trigger{{
			Label:        "Docs",
			Items:        []string{"${DROPDOWN_TEST_DIR}"},
			MarkdownFile: "${DROPDOWN_TEST_DIR}/help.md",
		}},
	}
	ResolveEnvVars(s)

	if s.Theme != "/tmp/panels/theme.yaml" {
		t.Errorf("Theme = %q", s.Theme)
	}
	if s.Triggers[0].Items[0] != "/tmp/panels" {
		t.Errorf("Items[0] = %q", s.Triggers[0].Items[0])
	}
	if s.Triggers[0].MarkdownFile != "/tmp/panels/help.md" {
		t.Errorf("MarkdownFile = %q", s.Triggers[0].MarkdownFile)
	}
}
