// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the theme path and in trigger
// labels, items and markdown sources.
func ResolveEnvVars(s *Settings) {
	s.Theme = expandEnv(s.Theme)

	for i := range s.Triggers {
		tr := &s.Triggers[i]
		tr.Label = expandEnv(tr.Label)
		tr.Markdown = expandEnv(tr.Markdown)
		tr.MarkdownFile = expandEnv(tr.MarkdownFile)
		for j := range tr.Items {
			tr.Items[j] = expandEnv(tr.Items[j])
		}
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}
