// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "sort"

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Text:          "252",
			Muted:         "243",
			Accent:        "214",
			Error:         "203",
			Border:        "238",
			FocusBorder:   "117",
			ActiveBorder:  "214",
			OverlayBorder: "183",
			Selection:     "237",
			SelectionText: "231",
			StatusBar:     "235",
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Text:          "235",
			Muted:         "245",
			Accent:        "166",
			Error:         "160",
			Border:        "249",
			FocusBorder:   "25",
			ActiveBorder:  "166",
			OverlayBorder: "61",
			Selection:     "254",
			SelectionText: "16",
			StatusBar:     "253",
		},
	},
	"monochrome": {
		Name:    "monochrome",
		Palette: Palette{},
	},
}

// Builtin returns the built-in theme with the given name.
func Builtin(name string) (*Theme, bool) {
	t, ok := builtins[name]
	if !ok {
		return nil, false
	}
	c := *t
	return &c, true
}

// BuiltinNames returns the sorted names of all built-in themes.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
