// ABOUTME: Pure overlay placement: alignment offset, horizontal viewport clamp, below-trigger top
// ABOUTME: Unknown alignments fail with ErrInvalidAlignment instead of defaulting

package dropdown

import (
	"errors"
	"fmt"
)

// Alignment selects how the overlay is anchored horizontally to the trigger.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ErrInvalidAlignment is returned for any alignment other than left, center
// or right.
var ErrInvalidAlignment = errors.New("invalid alignment")

// Valid reports whether a is one of the known alignments.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// ComputePosition places the overlay directly below the trigger, aligned per
// alignment and clamped horizontally to [0, viewportWidth].
//
// The clamp fires at most one branch, so an overlay wider than the viewport
// is pinned to one edge rather than centered. There is no vertical clamp.
func ComputePosition(trigger, overlay Box, alignment Alignment, viewportWidth float64) (Position, error) {
	left, err := alignedLeft(trigger, overlay.Width, alignment)
	if err != nil {
		return Position{}, err
	}
	return Position{
		Left: ClampLeft(left, overlay.Width, viewportWidth),
		Top:  trigger.Top + trigger.Height,
	}, nil
}

// alignedLeft returns the unclamped left coordinate.
func alignedLeft(trigger Box, overlayWidth float64, alignment Alignment) (float64, error) {
	left := trigger.Left
	switch alignment {
	case AlignLeft:
	case AlignCenter:
		left += trigger.Width/2 - overlayWidth/2
	case AlignRight:
		left += trigger.Width - overlayWidth
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAlignment, string(alignment))
	}
	return left, nil
}

// ClampLeft keeps an overlay of the given width inside the viewport
// horizontally. For widths that fit the viewport, applying it twice yields the
// same result as once.
func ClampLeft(left, width, viewportWidth float64) float64 {
	if left < 0 {
		return 0
	}
	if left+width > viewportWidth {
		return viewportWidth - width
	}
	return left
}
