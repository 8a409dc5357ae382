// ABOUTME: Markdown panel renderer wrapping glamour for overlay content
// ABOUTME: Caches rendered output keyed by content hash + wrap width

package btea

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/tui-dropdown/internal/log"
)

const defaultPanelWidth = 40

// MarkdownRenderer wraps glamour to render markdown with caching.
type MarkdownRenderer struct {
	style string
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a MarkdownRenderer. An empty style selects
// glamour's automatic light/dark detection.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{
		style: style,
		cache: make(map[string]string),
	}
}

// Render returns the terminal-styled rendering of md wrapped at width.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}
	if width <= 0 {
		width = defaultPanelWidth
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	styleOpt := glamour.WithAutoStyle()
	if r.style != "" {
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		log.Debug("markdown: renderer: %v", err)
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug("markdown: render: %v", err)
		return md
	}

	// glamour pads with blank lines and trailing spaces
	rendered = strings.Trim(rendered, "\n")
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	rendered = strings.Join(lines, "\n")

	r.cache[key] = rendered
	return rendered
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
