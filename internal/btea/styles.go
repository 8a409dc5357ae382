// ABOUTME: Lipgloss styles derived from the active theme palette
// ABOUTME: Styles() caches by theme pointer so View() never rebuilds styles for an unchanged theme

package btea

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/tui-dropdown/pkg/tui/theme"
)

// themeStylesEntry pairs a theme pointer with its pre-built styles.
type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

// cachedStyles is invalidated when theme.Set installs a new theme.
var cachedStyles atomic.Pointer[themeStylesEntry]

// ThemeStyles holds pre-built lipgloss styles for every semantic role.
type ThemeStyles struct {
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style

	Trigger       lipgloss.Style
	TriggerFocus  lipgloss.Style
	TriggerActive lipgloss.Style

	Overlay       lipgloss.Style
	Selection     lipgloss.Style
	FilterPrompt  lipgloss.Style
	StatusBar     lipgloss.Style
	StatusBarErr  lipgloss.Style
	OverlayHeader lipgloss.Style
}

// Styles returns ThemeStyles for the current theme.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

func fg(spec string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if spec != "" {
		s = s.Foreground(lipgloss.Color(spec))
	}
	return s
}

func buttonStyle(borderColor string) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if borderColor != "" {
		s = s.BorderForeground(lipgloss.Color(borderColor))
	}
	return s
}

// buildStyles constructs ThemeStyles from a theme's palette.
func buildStyles(t *theme.Theme) ThemeStyles {
	p := t.Palette

	selection := lipgloss.NewStyle().Bold(true)
	if p.Selection != "" {
		selection = selection.Background(lipgloss.Color(p.Selection))
	}
	if p.SelectionText != "" {
		selection = selection.Foreground(lipgloss.Color(p.SelectionText))
	}

	status := lipgloss.NewStyle()
	if p.StatusBar != "" {
		status = status.Background(lipgloss.Color(p.StatusBar))
	}

	overlay := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if p.OverlayBorder != "" {
		overlay = overlay.BorderForeground(lipgloss.Color(p.OverlayBorder))
	}

	return ThemeStyles{
		Text:   fg(p.Text),
		Muted:  fg(p.Muted),
		Accent: fg(p.Accent),
		Error:  fg(p.Error),

		Trigger:       buttonStyle(p.Border),
		TriggerFocus:  buttonStyle(p.FocusBorder),
		TriggerActive: buttonStyle(p.ActiveBorder).Bold(true),

		Overlay:       overlay,
		Selection:     selection,
		FilterPrompt:  fg(p.Accent),
		StatusBar:     status,
		StatusBarErr:  status.Foreground(lipgloss.Color(orDefault(p.Error, "9"))),
		OverlayHeader: fg(p.Accent).Bold(true),
	}
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
