// ABOUTME: Tests for the startup background choice and glamour style mapping
// ABOUTME: init() has already run; the test checks the exported view is consistent

package termfix

import (
	"os"
	"strings"
	"testing"
)

func TestGlamourStyleMatchesBackground(t *testing.T) {
	wantDark := !strings.EqualFold(os.Getenv(BackgroundEnv), "light")
	if DarkBackground() != wantDark {
		t.Errorf("DarkBackground() = %v; want %v", DarkBackground(), wantDark)
	}

	want := "dark"
	if !wantDark {
		want = "light"
	}
	if got := GlamourStyle(); got != want {
		t.Errorf("GlamourStyle() = %q; want %q", got, want)
	}
}
