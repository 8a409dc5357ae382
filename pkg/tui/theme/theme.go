// ABOUTME: Semantic palette for trigger buttons and overlay panels
// ABOUTME: Colors are lipgloss color specs ("208", "#BD93F9"); empty means terminal default

package theme

import "reflect"

// Palette maps semantic roles to lipgloss color specs.
type Palette struct {
	Text   string `yaml:"text" toml:"text"`
	Muted  string `yaml:"muted" toml:"muted"`
	Accent string `yaml:"accent" toml:"accent"`
	Error  string `yaml:"error" toml:"error"`

	// Trigger buttons
	Border       string `yaml:"border" toml:"border"`
	FocusBorder  string `yaml:"focus_border" toml:"focus_border"`
	ActiveBorder string `yaml:"active_border" toml:"active_border"`

	// Overlay panels
	OverlayBorder string `yaml:"overlay_border" toml:"overlay_border"`
	Selection     string `yaml:"selection" toml:"selection"`
	SelectionText string `yaml:"selection_text" toml:"selection_text"`

	StatusBar string `yaml:"status_bar" toml:"status_bar"`
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `yaml:"name" toml:"name"`
	Palette Palette `yaml:"palette" toml:"palette"`
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Muted:         "8",
		Accent:        "208",
		Error:         "203",
		Border:        "240",
		FocusBorder:   "117",
		ActiveBorder:  "208",
		OverlayBorder: "141",
		Selection:     "236",
		SelectionText: "231",
		StatusBar:     "236",
	}
}

// Merge returns base with every non-empty field of over applied on top.
func Merge(base, over Palette) Palette {
	out := base
	ov := reflect.ValueOf(over)
	dst := reflect.ValueOf(&out).Elem()
	for i := range ov.NumField() {
		if s := ov.Field(i).String(); s != "" {
			dst.Field(i).SetString(s)
		}
	}
	return out
}
