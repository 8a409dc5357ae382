// ABOUTME: Pre-sets the lipgloss background before BubbleTea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before bubbletea; also picks the matching glamour style

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BackgroundEnv overrides the assumed terminal background ("dark" or "light").
const BackgroundEnv = "TUI_DROPDOWN_BACKGROUND"

var dark = true

func init() {
	// An explicit background keeps lipgloss from sending OSC 10/11
	// queries whose replies would arrive as stray key input. This package
	// must not import bubbletea so that init order puts it first.
	dark = !strings.EqualFold(os.Getenv(BackgroundEnv), "light")
	lipgloss.SetHasDarkBackground(dark)
}

// DarkBackground reports the background assumed at startup.
func DarkBackground() bool {
	return dark
}

// GlamourStyle returns the glamour standard style for the assumed
// background. Auto-detection would query the terminal again.
func GlamourStyle() string {
	if dark {
		return "dark"
	}
	return "light"
}
