// ABOUTME: Tests for the layout registry: bounding boxes, subtree containment, hit-testing, compositing
// ABOUTME: Geometry follows the rendered button and overlay sizes in terminal cells

package btea

import (
	"strings"
	"testing"

	"github.com/mauromedda/tui-dropdown/internal/config"
	"github.com/mauromedda/tui-dropdown/pkg/dropdown"
	"github.com/mauromedda/tui-dropdown/pkg/tui/width"
)

func TestLayout_TriggerBoundingBoxFollowsScroll(t *testing.T) {
	m := newTestApp(t, testSettings(fileMenu("click")))
	l := m.sh.layout
	file := triggerByID(t, m, "file")

	box, ok := l.BoundingBox(file.wrapperID)
	if !ok {
		t.Fatal("trigger box not found")
	}
	if box != (dropdown.Box{Left: 4, Top: 2, Width: 8, Height: 3}) {
		t.Errorf("box = %+v; want {4 2 8 3}", box)
	}

	l.yOffset = 2
	box, _ = l.BoundingBox(file.wrapperID)
	if box.Top != 0 {
		t.Errorf("Top with yOffset 2 = %v; want 0", box.Top)
	}
}

func TestLayout_OverlayBoxOnlyWhileMounted(t *testing.T) {
	m := newTestApp(t, testSettings(fileMenu("click")))
	l := m.sh.layout
	file := triggerByID(t, m, "file")

	if _, ok := l.BoundingBox(file.overlayID); ok {
		t.Error("overlay box reported before content is mounted")
	}

	send(m, press(5, 3))
	box, ok := l.BoundingBox(file.overlayID)
	if !ok {
		t.Fatal("overlay box missing while shown")
	}
	if box.Width != 18 || box.Height != 5 {
		t.Errorf("overlay size = %vx%v; want 18x5", box.Width, box.Height)
	}
}

func TestLayout_UnknownElement(t *testing.T) {
	m := newTestApp(t, testSettings(fileMenu("click")))

	if _, ok := m.sh.layout.BoundingBox("nope"); ok {
		t.Error("unknown id reported a box")
	}
}

func TestLayout_Contains(t *testing.T) {
	edit := fileMenu("click")
	edit.ID, edit.Col = "edit", 20
	m := newTestApp(t, testSettings(fileMenu("click"), edit))
	l := m.sh.layout
	file := triggerByID(t, m, "file")
	other := triggerByID(t, m, "edit")

	tests := []struct {
		name     string
		ancestor dropdown.ElementID
		target   dropdown.ElementID
		want     bool
	}{
		{"self", file.wrapperID, file.wrapperID, true},
		{"overlay in trigger", file.wrapperID, file.overlayID, true},
		{"item in trigger", file.wrapperID, file.itemID(1), true},
		{"item in overlay", file.overlayID, file.itemID(0), true},
		{"trigger not in overlay", file.overlayID, file.wrapperID, false},
		{"other trigger", file.wrapperID, other.wrapperID, false},
		{"other overlay", file.wrapperID, other.overlayID, false},
		{"out of range item", file.wrapperID, file.itemID(9), false},
		{"page", file.wrapperID, pageID, false},
		{"empty target", file.wrapperID, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Contains(tt.ancestor, tt.target); got != tt.want {
				t.Errorf("Contains(%q, %q) = %v; want %v", tt.ancestor, tt.target, got, tt.want)
			}
		})
	}
}

func TestLayout_ElementAtFollowsScroll(t *testing.T) {
	m := newTestApp(t, testSettings(fileMenu("click")))
	l := m.sh.layout
	file := triggerByID(t, m, "file")

	// The button spans page rows 2-4 and columns 4-11.
	l.yOffset = 2
	tests := []struct {
		name string
		x, y int
		want dropdown.ElementID
	}{
		{"top row after scroll", 5, 0, file.wrapperID},
		{"last column", 11, 2, file.wrapperID},
		{"right of button", 12, 1, pageID},
		{"below button", 5, 3, pageID},
	}
	for _, tt := range tests {
		if got := l.elementAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: elementAt(%d,%d) = %q; want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLayout_ElementAt(t *testing.T) {
	m := newTestApp(t, testSettings(fileMenu("click")))
	l := m.sh.layout
	file := triggerByID(t, m, "file")

	if got := l.elementAt(5, 3); got != file.wrapperID {
		t.Errorf("elementAt(5,3) = %q; want trigger", got)
	}
	if got := l.elementAt(40, 10); got != pageID {
		t.Errorf("elementAt(40,10) = %q; want page", got)
	}
	// status bar row
	if got := l.elementAt(5, 23); got != pageID {
		t.Errorf("elementAt(5,23) = %q; want page", got)
	}

	send(m, press(5, 3))
	if got := l.elementAt(6, 5); got != file.overlayID {
		t.Errorf("elementAt on overlay border = %q; want overlay", got)
	}
	if got := l.elementAt(6, 8); got != file.itemID(1) {
		t.Errorf("elementAt on second item = %q; want %q", got, file.itemID(1))
	}
}

func TestLayout_PaintOrderByZIndex(t *testing.T) {
	low := config.Trigger{ID: "low", Label: "Low", Row: 1, Col: 0, Controlled: true, Open: true, ZIndex: 5, Markdown: "low"}
	high := config.Trigger{ID: "high", Label: "High", Row: 1, Col: 10, Controlled: true, Open: true, ZIndex: 1, Markdown: "high"}
	auto := config.Trigger{ID: "auto", Label: "Auto", Row: 1, Col: 20, Controlled: true, Open: true, Markdown: "auto"}
	m := newTestApp(t, testSettings(low, high, auto))

	var got []string
	for _, tr := range m.sh.layout.paintOrder() {
		got = append(got, tr.cfg.ID)
	}
	if strings.Join(got, ",") != "auto,high,low" {
		t.Errorf("paint order = %v; want [auto high low]", got)
	}
}

func TestCompositeOverlays_SplicesAtPosition(t *testing.T) {
	m := newTestApp(t, testSettings(fileMenu("click")))
	m = send(m, press(5, 3))

	lines := strings.Split(width.StripANSI(m.View()), "\n")
	if len(lines) < 10 {
		t.Fatalf("view has %d lines; want at least 10", len(lines))
	}
	// overlay row 2 (first item) starts at column 4 on screen row 7
	row := lines[7]
	if got := width.SliceByColumn(row, 4, 11); !strings.Contains(got, "Open") {
		t.Errorf("row 7 cols 4-11 = %q; want the Open item", got)
	}
	// the trigger button row above the overlay is untouched
	if !strings.Contains(lines[3], "File") {
		t.Errorf("row 3 = %q; want trigger label", lines[3])
	}
}

func TestCompositeOverlays_NoOverlayIsIdentity(t *testing.T) {
	m := newTestApp(t, testSettings(fileMenu("click")))
	bg := "a\nb\nc"

	if got := compositeOverlays(bg, m.sh.layout, 3); got != bg {
		t.Errorf("compositeOverlays() = %q; want background unchanged", got)
	}
}
