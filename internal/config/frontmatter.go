// ABOUTME: YAML frontmatter parser and markdown panel loader for overlay content files
// ABOUTME: A panel file may set title and width above its --- delimited header

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// ParseFrontmatter extracts YAML frontmatter from Markdown content.
// It returns the parsed frontmatter as T, the remaining body, and any error.
// Content without frontmatter yields (zero T, content, nil).
func ParseFrontmatter[T any](content string) (T, string, error) {
	var zero T

	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return zero, content, nil
	}

	rest := normalized[len(frontmatterDelimiter)+1:]

	var header, after string
	if strings.HasPrefix(rest, frontmatterDelimiter+"\n") || rest == frontmatterDelimiter {
		after = rest[len(frontmatterDelimiter):]
	} else {
		var ok bool
		header, after, ok = strings.Cut(rest, "\n"+frontmatterDelimiter)
		if !ok {
			return zero, "", errors.New("unterminated frontmatter: missing closing ---")
		}
	}

	var result T
	if err := yaml.Unmarshal([]byte(header), &result); err != nil {
		return zero, "", fmt.Errorf("parse frontmatter YAML: %w", err)
	}
	return result, strings.TrimPrefix(after, "\n"), nil
}

// Panel is a markdown overlay body with optional presentation hints.
type Panel struct {
	Title string `yaml:"title"`
	Width int    `yaml:"width"`
	Body  string `yaml:"-"`
}

// LoadPanel reads a markdown file with optional frontmatter.
func LoadPanel(path string) (Panel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Panel{}, fmt.Errorf("reading panel %s: %w", path, err)
	}
	p, body, err := ParseFrontmatter[Panel](string(data))
	if err != nil {
		return Panel{}, fmt.Errorf("panel %s: %w", path, err)
	}
	p.Body = body
	return p, nil
}
