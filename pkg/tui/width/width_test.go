// ABOUTME: Tests for width measurement, ANSI stripping, slicing and splicing
// ABOUTME: Covers ASCII, wide graphemes, styled text and overlay splicing at arbitrary columns

package width

import (
	"math"
	"testing"
)

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "ansi colored", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "mixed", input: "hi\x1b[1m!\x1b[0m", want: 3},
		{name: "only ansi", input: "\x1b[31m\x1b[0m", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VisibleWidth(tt.input); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestBlockSize(t *testing.T) {
	t.Parallel()

	if w, h := BlockSize(""); w != 0 || h != 0 {
		t.Errorf("BlockSize(\"\") = %d,%d; want 0,0", w, h)
	}
	if w, h := BlockSize("ab\n\x1b[1mabcd\x1b[0m\nc"); w != 4 || h != 3 {
		t.Errorf("BlockSize = %d,%d; want 4,3", w, h)
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no ansi", input: "plain text", want: "plain text"},
		{name: "sgr color", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "multiple sgr", input: "\x1b[31;1;4mstuff\x1b[0m", want: "stuff"},
		{name: "osc", input: "\x1b]0;title\x07text", want: "text"},
		{name: "cursor", input: "\x1b[10;20Hhere", want: "here"},
		{name: "only escape", input: "\x1b[0m", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSliceByColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		start, end int
		want       string
	}{
		{name: "middle", input: "abcdef", start: 1, end: 4, want: "bcd"},
		{name: "empty range", input: "abc", start: 2, end: 2, want: ""},
		{name: "past end", input: "abc", start: 1, end: 10, want: "bc"},
		{name: "wide cut", input: "a你b", start: 2, end: 4, want: " b"},
		{name: "styled", input: "\x1b[31mabc\x1b[0m", start: 1, end: 2, want: "\x1b[31mb" + Reset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SliceByColumn(tt.input, tt.start, tt.end); got != tt.want {
				t.Errorf("SliceByColumn(%q, %d, %d) = %q, want %q", tt.input, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	if got := TruncateToWidth("short", 10); got != "short" {
		t.Errorf("no-op truncate = %q", got)
	}
	got := TruncateToWidth("abcdefgh", 5)
	if StripANSI(got) != "abcd…" {
		t.Errorf("TruncateToWidth = %q, want abcd…", StripANSI(got))
	}
	if VisibleWidth(got) != 5 {
		t.Errorf("truncated width = %d, want 5", VisibleWidth(got))
	}
	if TruncateToWidth("abc", 0) != "" {
		t.Error("zero width should yield empty string")
	}
}

func TestSplice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		over string
		col  int
		want string
	}{
		{name: "inside", base: "..........", over: "XY", col: 3, want: "...XY....."},
		{name: "at start", base: "abcdef", over: "ZZ", col: 0, want: "ZZcdef"},
		{name: "past base end", base: "ab", over: "X", col: 4, want: "ab  X"},
		{name: "overhangs right", base: "abcd", over: "XYZ", col: 2, want: "abXYZ"},
		{name: "negative col clips", base: "abcd", over: "XYZ", col: -1, want: "YZcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := StripANSI(Splice(tt.base, tt.over, tt.col))
			if got != tt.want {
				t.Errorf("Splice(%q, %q, %d) = %q, want %q", tt.base, tt.over, tt.col, got, tt.want)
			}
		})
	}
}

func TestSplice_PreservesWidth(t *testing.T) {
	t.Parallel()

	base := "\x1b[32m" + "0123456789" + Reset
	got := Splice(base, "\x1b[1m[menu]\x1b[0m", 2)
	if VisibleWidth(got) != 10 {
		t.Errorf("VisibleWidth = %d, want 10 (%q)", VisibleWidth(got), got)
	}
	if SliceByColumn(got, 8, math.MaxInt) == "" {
		t.Error("suffix after overlay lost")
	}
}
