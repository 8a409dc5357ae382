// ABOUTME: Column-based slicing, padding, truncation and splicing of styled text
// ABOUTME: Splice paints one line over another at a cell column, used for overlay compositing

package width

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// SliceByColumn returns the cells of s in [start, end). Escape sequences
// seen before end are kept so the slice renders with the same style; a wide
// grapheme cut by a boundary is replaced by spaces.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}
	var b strings.Builder
	styled := false
	col := 0
	for i := 0; i < len(s) && col < end; {
		if s[i] == '\x1b' {
			j := skipANSISequence(s, i)
			b.WriteString(s[i:j])
			styled = true
			i = j
			continue
		}
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		switch {
		case col >= start && col+w <= end:
			b.WriteString(cluster)
		case col+w > start:
			lo, hi := max(col, start), min(col+w, end)
			b.WriteString(strings.Repeat(" ", hi-lo))
		}
		col += w
		i += len(cluster)
	}
	if styled {
		b.WriteString(Reset)
	}
	return b.String()
}

// PadRight pads s with spaces up to w visible cells.
func PadRight(s string, w int) string {
	if vw := VisibleWidth(s); vw < w {
		return s + strings.Repeat(" ", w-vw)
	}
	return s
}

// TruncateToWidth truncates s to at most maxWidth visible cells, replacing
// the last cell with an ellipsis when it cuts.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return strings.TrimSuffix(SliceByColumn(s, 0, maxWidth-1), Reset) + Reset + "…"
}

// Splice paints over onto base starting at cell column col. Cells of base
// left of col and right of the painted span are preserved; base is padded
// with spaces when it is shorter than col.
func Splice(base, over string, col int) string {
	if col < 0 {
		over = SliceByColumn(over, -col, math.MaxInt)
		col = 0
	}
	ow := VisibleWidth(over)
	prefix := PadRight(SliceByColumn(base, 0, col), col)
	suffix := SliceByColumn(base, col+ow, math.MaxInt)
	return prefix + Reset + over + Reset + suffix
}
