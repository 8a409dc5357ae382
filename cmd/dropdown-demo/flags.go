// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --mode, --positioning, --click-outside, --verbose, --no-watch, --log-file, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	config       string
	mode         string
	positioning  string
	clickOutside bool
	verbose      bool
	noWatch      bool
	logFile      string
	theme        string
	version      bool

	// set reports which flags appeared on the command line.
	set map[string]bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("dropdown-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&args.config, "config", "", "Config file to use instead of the global and project files")
	fs.StringVar(&args.mode, "mode", "", "Default trigger mode: hover or click")
	fs.StringVar(&args.positioning, "positioning", "", "Default overlay alignment: left, center or right")
	fs.BoolVar(&args.clickOutside, "click-outside", false, "Dismiss overlays on clicks outside their trigger")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.noWatch, "no-watch", false, "Do not reload config files on change")
	fs.StringVar(&args.logFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.StringVar(&args.theme, "theme", "", "Theme name or YAML theme file")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	args.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	return args, nil
}

// clickOutsideOverride is nil unless --click-outside was given explicitly.
func (a cliArgs) clickOutsideOverride() *bool {
	if !a.set["click-outside"] {
		return nil
	}
	v := a.clickOutside
	return &v
}
