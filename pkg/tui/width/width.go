// ABOUTME: Cell-width measurement of styled terminal text and multi-line blocks
// ABOUTME: Grapheme-aware via uniseg + go-runewidth; ANSI sequences count as zero width

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal cells s occupies. ANSI escape
// sequences contribute zero width; wide graphemes (CJK, emoji) count as two.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// BlockSize returns the widest line and the line count of a rendered block.
// An empty string is a zero-sized block.
func BlockSize(block string) (w, h int) {
	if block == "" {
		return 0, 0
	}
	lines := strings.Split(block, "\n")
	for _, l := range lines {
		w = max(w, VisibleWidth(l))
	}
	return w, len(lines)
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
