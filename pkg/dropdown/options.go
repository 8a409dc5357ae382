// ABOUTME: Dropdown configuration: trigger mode, alignment, controlled flag and pass-through ids
// ABOUTME: Functional options over an Options struct; mode is normalized once in New

package dropdown

import (
	"github.com/mauromedda/tui-dropdown/internal/log"
)

// Mode selects which interaction events drive visibility.
type Mode string

const (
	ModeHover Mode = "hover"
	ModeClick Mode = "click"
)

// MountStrategy controls whether overlay content stays mounted while hidden.
type MountStrategy string

const (
	// MountLazy mounts content only while visible; content state resets on
	// every show.
	MountLazy MountStrategy = "lazy"
	// MountEager keeps content mounted and hides it via visibility.
	MountEager MountStrategy = "eager"
)

// Options is the full set of per-instance settings.
type Options struct {
	Mode        Mode
	Positioning Alignment
	// IsOpen switches the dropdown into controlled mode when non-nil.
	IsOpen       *bool
	ClickOutside bool
	// ZIndex orders overlapping overlays; 0 means auto.
	ZIndex            int
	WrapperID         ElementID
	DropdownWrapperID ElementID
	ClassName         string
	Mount             MountStrategy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the settings used when no option overrides them.
func DefaultOptions() Options {
	return Options{
		Mode:        ModeHover,
		Positioning: AlignLeft,
		ClassName:   "dropdown",
		Mount:       MountLazy,
	}
}

// WithMode sets the trigger mode.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithPositioning sets the horizontal alignment policy.
func WithPositioning(a Alignment) Option {
	return func(o *Options) { o.Positioning = a }
}

// WithOpen sets the external open flag. nil releases control.
func WithOpen(open *bool) Option {
	return func(o *Options) {
		if open == nil {
			o.IsOpen = nil
			return
		}
		v := *open
		o.IsOpen = &v
	}
}

// WithClickOutside enables dismissal on pointer-down outside the trigger.
func WithClickOutside(enabled bool) Option {
	return func(o *Options) { o.ClickOutside = enabled }
}

// WithZIndex sets the stacking value.
func WithZIndex(z int) Option {
	return func(o *Options) { o.ZIndex = z }
}

// WithWrapperID names the trigger container element.
func WithWrapperID(id ElementID) Option {
	return func(o *Options) { o.WrapperID = id }
}

// WithDropdownWrapperID names the overlay wrapper element.
func WithDropdownWrapperID(id ElementID) Option {
	return func(o *Options) { o.DropdownWrapperID = id }
}

// WithClassName sets the container class name.
func WithClassName(name string) Option {
	return func(o *Options) { o.ClassName = name }
}

// WithMountStrategy selects lazy or eager content mounting.
func WithMountStrategy(s MountStrategy) Option {
	return func(o *Options) { o.Mount = s }
}

// WithOptions replaces every setting with o.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		*dst = o
		if o.IsOpen != nil {
			v := *o.IsOpen
			dst.IsOpen = &v
		}
	}
}

// Controlled reports whether visibility is owned by the caller.
func (o Options) Controlled() bool {
	return o.IsOpen != nil
}

// normalizeMode corrects an unknown mode to hover with a warning.
func normalizeMode(m Mode) Mode {
	switch m {
	case ModeHover, ModeClick:
		return m
	}
	log.Warn("dropdown: use one of [hover click] for mode, got %q; defaulting to hover", string(m))
	return ModeHover
}

func normalizeMount(s MountStrategy) MountStrategy {
	if s == MountEager {
		return MountEager
	}
	return MountLazy
}
