// ABOUTME: Tests for CLI flag parsing and the explicit --click-outside override
// ABOUTME: Uses a fresh FlagSet per call so tests can run in parallel

package main

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{"--mode", "click", "--positioning", "right", "--no-watch", "--verbose", "--config", "x.toml"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if args.mode != "click" || args.positioning != "right" {
		t.Errorf("mode/positioning = %q/%q", args.mode, args.positioning)
	}
	if !args.noWatch || !args.verbose {
		t.Error("expected --no-watch and --verbose to be set")
	}
	if args.config != "x.toml" {
		t.Errorf("config = %q; want x.toml", args.config)
	}
}

func TestClickOutsideOverride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want *bool
	}{
		{"absent", nil, nil},
		{"enabled", []string{"--click-outside"}, ptrBool(true)},
		{"disabled", []string{"--click-outside=false"}, ptrBool(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args, err := parseFlags(tt.argv, io.Discard)
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			got := args.clickOutsideOverride()
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("override = %v; want nil", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("override = %v; want %v", got, *tt.want)
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v; want flag.ErrHelp", err)
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"--bogus"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func ptrBool(b bool) *bool { return &b }
