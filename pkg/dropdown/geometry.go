// ABOUTME: Geometry snapshots (Box, Position) and the Host capability interface
// ABOUTME: Host hides the rendering engine so position math stays pure

package dropdown

// ElementID names a rendered element the host can measure and hit-test.
type ElementID string

// Box is a read-only layout snapshot in viewport coordinates.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the right edge of the box.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the bottom edge of the box.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Contains reports whether the point lies inside the box. The right and
// bottom edges are exclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left && x < b.Right() && y >= b.Top && y < b.Bottom()
}

// Position is the overlay's absolute placement.
type Position struct {
	Left float64
	Top  float64
}

// Host is the rendering environment a Dropdown is mounted into.
type Host interface {
	// BoundingBox returns the current box of the element, or false if the
	// element is not rendered.
	BoundingBox(id ElementID) (Box, bool)
	// ViewportWidth returns the width available for horizontal clamping.
	ViewportWidth() float64
	// Contains reports whether target is ancestor itself or lies inside it.
	Contains(ancestor, target ElementID) bool
}

// queryBox asks the host for a fresh box. Unrendered elements degrade to a
// zero-sized box.
func queryBox(h Host, id ElementID) Box {
	if h == nil || id == "" {
		return Box{}
	}
	b, ok := h.BoundingBox(id)
	if !ok {
		return Box{}
	}
	return b
}
