// ABOUTME: compositeOverlays paints every shown overlay onto the rendered screen
// ABOUTME: Overlays are spliced at their computed cell position in ascending z-index order

package btea

import (
	"strings"

	"github.com/mauromedda/tui-dropdown/pkg/tui/width"
)

// compositeOverlays splices overlay panels into background. Background
// rows outside an overlay are preserved; overlay rows that fall outside
// the screen are clipped.
func compositeOverlays(background string, l *layout, termHeight int) string {
	painted := l.paintOrder()
	if len(painted) == 0 {
		return background
	}

	lines := strings.Split(background, "\n")
	for len(lines) < termHeight {
		lines = append(lines, "")
	}

	for _, t := range painted {
		rendered := t.renderOverlay(l.md)
		if rendered == "" {
			continue
		}
		r := l.overlayRect(t, rendered)
		for i, ovLine := range strings.Split(rendered, "\n") {
			row := r.row + i
			if row < 0 || row >= len(lines) {
				continue
			}
			lines[row] = width.Splice(lines[row], ovLine, r.col)
		}
	}
	return strings.Join(lines, "\n")
}
