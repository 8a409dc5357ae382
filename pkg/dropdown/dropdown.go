// ABOUTME: Dropdown binds the visibility controller to position recomputation and window subscriptions
// ABOUTME: Scroll/resize listeners live only while shown; the outside-click listener only while mounted

package dropdown

import (
	"fmt"

	"github.com/mauromedda/tui-dropdown/internal/eventbus"
	"github.com/mauromedda/tui-dropdown/internal/log"
)

// Frame describes what the host should render for one dropdown.
type Frame struct {
	// Visible is true once the overlay has a fresh position and may paint.
	Visible bool
	// ContentMounted is true when overlay content belongs in the render tree.
	ContentMounted    bool
	Position          Position
	ZIndex            int
	WrapperID         ElementID
	DropdownWrapperID ElementID
	ClassName         string
	// Focusable and Role are set only for uncontrolled dropdowns, whose
	// container acts as a keyboard-activatable button.
	Focusable bool
	Role      string
}

// Dropdown is one trigger/overlay widget instance.
//
// All methods must be called from the host's event loop; a Dropdown is not
// safe for concurrent use.
type Dropdown struct {
	host   Host
	window *Window
	opts   Options
	ctrl   *Controller

	mounted        bool
	shown          bool
	contentMounted bool
	position       Position
	err            error

	viewportSubs eventbus.Scope
	outsideSubs  eventbus.Scope
}

// New creates an unmounted dropdown. The mode is validated here, once; an
// unknown mode falls back to hover with a warning.
func New(host Host, window *Window, opts ...Option) *Dropdown {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Mode = normalizeMode(o.Mode)
	o.Mount = normalizeMount(o.Mount)

	return &Dropdown{
		host:   host,
		window: window,
		opts:   o,
		ctrl:   NewController(o.Mode, o.IsOpen),
	}
}

// Mount activates the dropdown. A controlled dropdown that is already open
// is positioned and shown immediately.
func (d *Dropdown) Mount() error {
	if d.mounted {
		return nil
	}
	d.mounted = true
	if d.opts.Mount == MountEager {
		d.contentMounted = true
	}
	d.syncOutsideListener()
	return d.sync()
}

// Unmount releases every subscription and discards all state. A later Mount
// starts from scratch.
func (d *Dropdown) Unmount() {
	d.viewportSubs.Release()
	d.outsideSubs.Release()
	d.mounted = false
	d.shown = false
	d.contentMounted = false
	d.position = Position{}
	d.err = nil
	d.ctrl = NewController(d.opts.Mode, d.opts.IsOpen)
}

// Update applies option changes. Mode is fixed per instance and is not
// changed by Update. An alignment change while shown recomputes the position.
func (d *Dropdown) Update(opts ...Option) error {
	next := d.opts
	for _, opt := range opts {
		opt(&next)
	}
	if next.Mode != d.opts.Mode {
		log.Debug("dropdown %s: mode is fixed at %q, ignoring %q", d.opts.WrapperID, d.opts.Mode, next.Mode)
		next.Mode = d.opts.Mode
	}
	next.Mount = normalizeMount(next.Mount)

	alignChanged := next.Positioning != d.opts.Positioning
	wasShown := d.shown
	d.opts = next
	d.ctrl.SetExternal(next.IsOpen)
	if d.mounted && d.opts.Mount == MountEager {
		d.contentMounted = true
	}
	d.syncOutsideListener()

	if err := d.sync(); err != nil {
		return err
	}
	if alignChanged && wasShown && d.shown {
		if err := d.recompute(); err != nil {
			d.hide()
			return err
		}
	}
	return nil
}

// PointerEnter handles the pointer entering the trigger container.
func (d *Dropdown) PointerEnter() error {
	if !d.mounted {
		return nil
	}
	d.ctrl.PointerEnter()
	return d.sync()
}

// PointerLeave handles the pointer leaving the trigger container.
func (d *Dropdown) PointerLeave() error {
	if !d.mounted {
		return nil
	}
	d.ctrl.PointerLeave()
	return d.sync()
}

// KeyDown handles a key pressed while the trigger container has focus.
func (d *Dropdown) KeyDown(key string) error {
	if !d.mounted {
		return nil
	}
	d.ctrl.KeyActivate(key)
	return d.sync()
}

// Click handles a click whose target is inside the trigger container.
func (d *Dropdown) Click(target ElementID) error {
	if !d.mounted {
		return nil
	}
	inside := d.opts.DropdownWrapperID != "" && d.host != nil &&
		d.host.Contains(d.opts.DropdownWrapperID, target)
	d.ctrl.Click(inside)
	return d.sync()
}

// Visible reports the controller's visibility. The overlay paints only when
// Frame().Visible is also true.
func (d *Dropdown) Visible() bool {
	return d.ctrl.Visible()
}

// Controlled reports whether visibility is owned by the caller.
func (d *Dropdown) Controlled() bool {
	return d.ctrl.Controlled()
}

// Mounted reports whether the dropdown is mounted.
func (d *Dropdown) Mounted() bool {
	return d.mounted
}

// Options returns a copy of the effective options.
func (d *Dropdown) Options() Options {
	o := d.opts
	if o.IsOpen != nil {
		v := *o.IsOpen
		o.IsOpen = &v
	}
	return o
}

// Position returns the last computed overlay position.
func (d *Dropdown) Position() Position {
	return d.position
}

// Err returns the error from the most recent position computation, if any.
func (d *Dropdown) Err() error {
	return d.err
}

// Frame returns the current render description.
func (d *Dropdown) Frame() Frame {
	f := Frame{
		Visible:           d.shown,
		ContentMounted:    d.contentMounted,
		Position:          d.position,
		ZIndex:            d.opts.ZIndex,
		WrapperID:         d.opts.WrapperID,
		DropdownWrapperID: d.opts.DropdownWrapperID,
		ClassName:         d.opts.ClassName,
	}
	if !d.ctrl.Controlled() {
		f.Focusable = true
		f.Role = "button"
	}
	return f
}

// sync reconciles the painted state with the controller. Entering the shown
// state mounts content, computes the position and only then marks the
// overlay shown, so it never paints at a stale position.
func (d *Dropdown) sync() error {
	if !d.mounted {
		return nil
	}
	if d.ctrl.Visible() {
		d.contentMounted = true
		if d.shown {
			return nil
		}
		if err := d.recompute(); err != nil {
			return err
		}
		d.shown = true
		d.acquireViewportListeners()
		return nil
	}

	d.hide()
	if d.opts.Mount == MountLazy {
		d.contentMounted = false
	}
	return nil
}

// recompute queries fresh geometry and replaces the position.
func (d *Dropdown) recompute() error {
	trigger := queryBox(d.host, d.opts.WrapperID)
	overlay := queryBox(d.host, d.opts.DropdownWrapperID)

	var vw float64
	if d.host != nil {
		vw = d.host.ViewportWidth()
	}

	pos, err := ComputePosition(trigger, overlay, d.opts.Positioning, vw)
	if err != nil {
		d.err = fmt.Errorf("dropdown %s: %w", d.opts.WrapperID, err)
		return d.err
	}
	d.err = nil
	d.position = pos
	return nil
}

func (d *Dropdown) acquireViewportListeners() {
	if d.window == nil || d.viewportSubs.Active() {
		return
	}
	d.viewportSubs.Add(d.window.OnScroll(func(ScrollEvent) { d.onViewportChange() }))
	d.viewportSubs.Add(d.window.OnResize(func(ResizeEvent) { d.onViewportChange() }))
}

func (d *Dropdown) onViewportChange() {
	if !d.shown {
		return
	}
	if err := d.recompute(); err != nil {
		log.Warn("%v", err)
		d.hide()
	}
}

// hide stops painting the overlay and drops the viewport listeners. The
// controller keeps its state, so a later successful sync shows it again.
func (d *Dropdown) hide() {
	if !d.shown {
		return
	}
	d.shown = false
	d.viewportSubs.Release()
}

// syncOutsideListener holds the pointer subscription exactly while the
// dropdown is mounted, uncontrolled and has outside dismissal enabled.
func (d *Dropdown) syncOutsideListener() {
	want := d.window != nil && d.mounted && d.opts.ClickOutside && !d.ctrl.Controlled()
	if want == d.outsideSubs.Active() {
		return
	}
	if !want {
		d.outsideSubs.Release()
		return
	}
	d.outsideSubs.Add(d.window.OnPointer(d.onWindowPointer))
}

func (d *Dropdown) onWindowPointer(ev PointerEvent) {
	if d.host != nil && d.opts.WrapperID != "" && d.host.Contains(d.opts.WrapperID, ev.Target) {
		return
	}
	if d.ctrl.Dismiss() {
		_ = d.sync()
	}
}
