// ABOUTME: Built-in trigger layout used when no config file defines triggers
// ABOUTME: Covers both modes, all alignments, a controlled overlay, and a markdown panel

package btea

import "github.com/mauromedda/tui-dropdown/internal/config"

const helpMarkdown = `# Keys

- **tab** moves focus
- **space** / **enter** toggles a hover trigger
- **o** opens controlled overlays
- **j** / **k** scroll the page
- **q** quits`

func boolPtr(b bool) *bool { return &b }

// DemoTriggers returns the default trigger layout.
func DemoTriggers() []config.Trigger {
	return []config.Trigger{
		{
			ID: "file", Label: "File", Row: 1, Col: 2,
			Mode:  "hover",
			Items: []string{"New", "Open...", "Open Recent", "Save", "Save As...", "Close"},
		},
		{
			ID: "edit", Label: "Edit", Row: 1, Col: 12,
			Mode: "click", Positioning: "center", ClickOutside: boolPtr(true),
			Items: []string{"Undo", "Redo", "Cut", "Copy", "Paste", "Find", "Replace"},
		},
		{
			ID: "view", Label: "View", Row: 1, Col: 22,
			Mode: "click", Positioning: "right", ClickOutside: boolPtr(true),
			Items: []string{"Zoom In", "Zoom Out", "Reset Zoom", "Full Screen"},
		},
		{
			ID: "help", Label: "Help", Row: 1, Col: 32,
			Mode: "hover", Positioning: "right", ZIndex: 10,
			Markdown: helpMarkdown,
		},
		{
			ID: "status", Label: "Status", Row: 12, Col: 2,
			Controlled: true, Mount: "eager",
			Markdown: "Opened by the app with **o**.\n\nClicks and hover do not change it.",
		},
		{
			ID: "deep", Label: "Scroll me", Row: 30, Col: 4,
			Mode: "click", ClickOutside: boolPtr(true),
			Items: []string{"alpha", "beta", "gamma", "delta"},
		},
	}
}
