// ABOUTME: Visibility state machine for hover, click and controlled dropdowns
// ABOUTME: Handlers return whether visibility changed; controlled mode ignores local events

package dropdown

// Controller owns the visible flag.
//
// In controlled mode Visible mirrors the external flag and every local
// handler is a no-op. In uncontrolled mode the flag starts false and is
// driven by the handlers according to the mode.
type Controller struct {
	mode     Mode
	external *bool
	shown    bool
}

// NewController creates a controller. mode must already be normalized.
func NewController(mode Mode, isOpen *bool) *Controller {
	c := &Controller{mode: mode}
	c.SetExternal(isOpen)
	return c
}

// Mode returns the controller's mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Controlled reports whether visibility is owned by the caller.
func (c *Controller) Controlled() bool {
	return c.external != nil
}

// Visible returns the current visibility.
func (c *Controller) Visible() bool {
	if c.external != nil {
		return *c.external
	}
	return c.shown
}

// SetExternal updates the external flag. A nil flag returns control to the
// controller, which continues from the last visible value.
func (c *Controller) SetExternal(isOpen *bool) (changed bool) {
	before := c.Visible()
	if isOpen == nil {
		if c.external != nil {
			c.shown = *c.external
		}
		c.external = nil
	} else {
		v := *isOpen
		c.external = &v
	}
	return c.Visible() != before
}

// PointerEnter shows a hover dropdown.
func (c *Controller) PointerEnter() bool {
	if c.Controlled() || c.mode != ModeHover {
		return false
	}
	return c.set(true)
}

// PointerLeave hides a hover dropdown.
func (c *Controller) PointerLeave() bool {
	if c.Controlled() || c.mode != ModeHover {
		return false
	}
	return c.set(false)
}

// KeyActivate toggles a hover dropdown on Space or Enter.
func (c *Controller) KeyActivate(key string) bool {
	if c.Controlled() || c.mode != ModeHover || !IsActivationKey(key) {
		return false
	}
	return c.set(!c.shown)
}

// Click toggles a click dropdown. Clicks landing inside the overlay are
// ignored so that interacting with overlay content keeps it open.
func (c *Controller) Click(insideOverlay bool) bool {
	if c.Controlled() || c.mode != ModeClick || insideOverlay {
		return false
	}
	return c.set(!c.shown)
}

// Dismiss hides an uncontrolled dropdown after an outside pointer-down.
func (c *Controller) Dismiss() bool {
	if c.Controlled() {
		return false
	}
	return c.set(false)
}

func (c *Controller) set(v bool) bool {
	if c.shown == v {
		return false
	}
	c.shown = v
	return true
}

// IsActivationKey reports whether key activates a focused trigger.
// Accepts the names Bubble Tea reports for the keys.
func IsActivationKey(key string) bool {
	switch key {
	case " ", "space", "enter", "Enter":
		return true
	}
	return false
}
