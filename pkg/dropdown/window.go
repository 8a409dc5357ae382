// ABOUTME: Window is the viewport-level notification source: scroll, resize and pointer events
// ABOUTME: One Window is shared by every dropdown mounted in the same host

package dropdown

import "github.com/mauromedda/tui-dropdown/internal/eventbus"

// ScrollEvent reports that the viewport content moved.
type ScrollEvent struct {
	OffsetX float64
	OffsetY float64
}

// ResizeEvent reports a new viewport size.
type ResizeEvent struct {
	Width  float64
	Height float64
}

// PointerEvent reports a pointer-down anywhere in the viewport.
type PointerEvent struct {
	Target ElementID
	X      float64
	Y      float64
}

// Window fans out host notifications to subscribed dropdowns.
type Window struct {
	scroll  *eventbus.Bus[ScrollEvent]
	resize  *eventbus.Bus[ResizeEvent]
	pointer *eventbus.Bus[PointerEvent]
}

// NewWindow creates an empty notification source.
func NewWindow() *Window {
	return &Window{
		scroll:  eventbus.New[ScrollEvent](),
		resize:  eventbus.New[ResizeEvent](),
		pointer: eventbus.New[PointerEvent](),
	}
}

// OnScroll subscribes to scroll notifications.
func (w *Window) OnScroll(fn func(ScrollEvent)) func() {
	return w.scroll.Subscribe(fn)
}

// OnResize subscribes to resize notifications.
func (w *Window) OnResize(fn func(ResizeEvent)) func() {
	return w.resize.Subscribe(fn)
}

// OnPointer subscribes to pointer-down notifications.
func (w *Window) OnPointer(fn func(PointerEvent)) func() {
	return w.pointer.Subscribe(fn)
}

// DispatchScroll delivers ev to scroll subscribers.
func (w *Window) DispatchScroll(ev ScrollEvent) { w.scroll.Publish(ev) }

// DispatchResize delivers ev to resize subscribers.
func (w *Window) DispatchResize(ev ResizeEvent) { w.resize.Publish(ev) }

// DispatchPointer delivers ev to pointer subscribers.
func (w *Window) DispatchPointer(ev PointerEvent) { w.pointer.Publish(ev) }

// Listeners returns the current subscriber counts for scroll, resize and
// pointer notifications.
func (w *Window) Listeners() (scroll, resize, pointer int) {
	return w.scroll.Count(), w.resize.Count(), w.pointer.Count()
}
