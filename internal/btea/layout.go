// ABOUTME: Layout registry placing trigger buttons on a scrollable page and measuring overlays
// ABOUTME: Implements dropdown.Host: bounding boxes in viewport cells, terminal width, subtree hit-testing

package btea

import (
	"math"
	"sort"
	"strings"

	"github.com/mauromedda/tui-dropdown/pkg/dropdown"
	"github.com/mauromedda/tui-dropdown/pkg/tui/width"
)

// pageID names the background page; it contains no trigger.
const pageID dropdown.ElementID = "page"

// cellRect is a rectangle in terminal cells.
type cellRect struct {
	row, col, w, h int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.col && x < r.col+r.w && y >= r.row && y < r.row+r.h
}

// layout is shared by every AppModel copy; the dropdowns hold it as their Host.
type layout struct {
	triggers  []*trigger
	byWrapper map[dropdown.ElementID]*trigger
	byOverlay map[dropdown.ElementID]*trigger

	md *MarkdownRenderer

	width    int
	vpHeight int
	yOffset  int
}

var _ dropdown.Host = (*layout)(nil)

func newLayout(md *MarkdownRenderer) *layout {
	return &layout{
		byWrapper: make(map[dropdown.ElementID]*trigger),
		byOverlay: make(map[dropdown.ElementID]*trigger),
		md:        md,
	}
}

// setTriggers replaces the registered triggers.
func (l *layout) setTriggers(ts []*trigger) {
	l.triggers = ts
	clear(l.byWrapper)
	clear(l.byOverlay)
	for _, t := range ts {
		l.byWrapper[t.wrapperID] = t
		l.byOverlay[t.overlayID] = t
	}
}

// buttonRect is the trigger's rectangle in page coordinates.
func (l *layout) buttonRect(t *trigger) cellRect {
	w, h := t.buttonSize()
	return cellRect{row: t.cfg.Row, col: t.cfg.Col, w: w, h: h}
}

// BoundingBox implements dropdown.Host.
func (l *layout) BoundingBox(id dropdown.ElementID) (dropdown.Box, bool) {
	if t, ok := l.byWrapper[id]; ok {
		r := l.buttonRect(t)
		return dropdown.Box{
			Left:   float64(r.col),
			Top:    float64(r.row - l.yOffset),
			Width:  float64(r.w),
			Height: float64(r.h),
		}, true
	}
	if t, ok := l.byOverlay[id]; ok {
		frame := t.dd.Frame()
		if !frame.ContentMounted {
			return dropdown.Box{}, false
		}
		w, h := width.BlockSize(t.renderOverlay(l.md))
		return dropdown.Box{
			Left:   frame.Position.Left,
			Top:    frame.Position.Top,
			Width:  float64(w),
			Height: float64(h),
		}, true
	}
	return dropdown.Box{}, false
}

// ViewportWidth implements dropdown.Host.
func (l *layout) ViewportWidth() float64 {
	return float64(l.width)
}

// Contains implements dropdown.Host. Each overlay, and every menu item in
// it, is a descendant of its trigger container.
func (l *layout) Contains(ancestor, target dropdown.ElementID) bool {
	if ancestor == "" || target == "" {
		return false
	}
	if ancestor == target {
		return true
	}
	if t, ok := l.byWrapper[ancestor]; ok {
		if target == t.overlayID {
			return true
		}
		_, isItem := t.itemIndex(target)
		return isItem
	}
	if t, ok := l.byOverlay[ancestor]; ok {
		_, isItem := t.itemIndex(target)
		return isItem
	}
	return false
}

// ownerOf returns the trigger whose subtree contains target.
func (l *layout) ownerOf(target dropdown.ElementID) *trigger {
	for _, t := range l.triggers {
		if l.Contains(t.wrapperID, target) {
			return t
		}
	}
	return nil
}

// paintOrder returns the triggers with a painted overlay by ascending
// z-index; equal z-indexes keep declaration order.
func (l *layout) paintOrder() []*trigger {
	var out []*trigger
	for _, t := range l.triggers {
		if t.dd.Frame().Visible {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].dd.Frame().ZIndex < out[j].dd.Frame().ZIndex
	})
	return out
}

// overlayRect is where the overlay is painted, in screen cells.
func (l *layout) overlayRect(t *trigger, rendered string) cellRect {
	pos := t.dd.Frame().Position
	w, h := width.BlockSize(rendered)
	return cellRect{
		row: int(math.Round(pos.Top)),
		col: int(math.Round(pos.Left)),
		w:   w,
		h:   h,
	}
}

// elementAt hit-tests a screen cell. Overlays are tested topmost first,
// then the trigger buttons inside the viewport.
func (l *layout) elementAt(x, y int) dropdown.ElementID {
	painted := l.paintOrder()
	for i := len(painted) - 1; i >= 0; i-- {
		t := painted[i]
		r := l.overlayRect(t, t.renderOverlay(l.md))
		if !r.contains(x, y) {
			continue
		}
		if id, ok := t.overlayRowItem(y - r.row); ok {
			return id
		}
		return t.overlayID
	}

	if y < 0 || y >= l.vpHeight {
		return pageID
	}
	for _, t := range l.triggers {
		if b, ok := l.BoundingBox(t.wrapperID); ok && b.Contains(float64(x), float64(y)) {
			return t.wrapperID
		}
	}
	return pageID
}

// renderPage draws every trigger button onto a blank page. The page is
// tall enough for the last button to scroll to the top of the viewport.
func (l *layout) renderPage(focused *trigger) string {
	bottom := 0
	for _, t := range l.triggers {
		r := l.buttonRect(t)
		bottom = max(bottom, r.row+r.h)
	}
	lines := make([]string, bottom+max(l.vpHeight, 1))

	for _, t := range l.triggers {
		btn := strings.Split(t.renderButton(t == focused), "\n")
		for i, line := range btn {
			row := t.cfg.Row + i
			if row < 0 || row >= len(lines) {
				continue
			}
			lines[row] = width.Splice(lines[row], line, t.cfg.Col)
		}
	}
	return strings.Join(lines, "\n")
}
