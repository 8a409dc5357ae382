// ABOUTME: CLI entry point for dropdown-demo, an interactive host for dropdown overlays
// ABOUTME: Loads config, resolves the theme, runs the Bubble Tea program alongside the config watcher

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/tui-dropdown/internal/btea"
	"github.com/mauromedda/tui-dropdown/internal/config"
	dlog "github.com/mauromedda/tui-dropdown/internal/log"
	// termfix presets the lipgloss background in its init().
	"github.com/mauromedda/tui-dropdown/internal/termfix"
	"github.com/mauromedda/tui-dropdown/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("dropdown-demo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings and runs the program until the user quits.
func run(args cliArgs) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}

	if args.logFile != "" {
		closeLog, err := dlog.OpenFile(args.logFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer closeLog()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, watchPaths, err := loadSettings(cwd, args)
	if err != nil {
		return err
	}

	th, err := theme.Resolve(settings.Theme, settings.Palette)
	if err != nil {
		return fmt.Errorf("resolving theme: %w", err)
	}
	theme.Set(th)

	w, h, err := term.GetSize(fd)
	if err != nil {
		dlog.Debug("terminal size: %v", err)
	}

	model := btea.NewAppModel(btea.AppDeps{
		Settings: settings,
		Overrides: btea.Overrides{
			Mode:         args.mode,
			Positioning:  args.positioning,
			ClickOutside: args.clickOutsideOverride(),
		},
		Version:       version,
		MarkdownStyle: termfix.GlamourStyle(),
		Width:         w,
		Height:        h,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	})

	if !args.noWatch {
		watcher := config.NewWatcher(watchPaths, func() {
			s, _, err := loadSettings(cwd, args)
			p.Send(btea.ConfigReloadedMsg{Settings: s, Err: err})
		})
		g.Go(func() error {
			if err := watcher.Run(gctx); err != nil {
				dlog.Warn("config watcher disabled: %v", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// loadSettings reads config and applies the CLI values that outrank it.
func loadSettings(cwd string, args cliArgs) (*config.Settings, []string, error) {
	settings, paths, err := config.Load(cwd, args.config)
	if err != nil {
		return nil, nil, err
	}
	if args.theme != "" {
		settings.Theme = args.theme
	}

	if lvl, ok := dlog.ParseLevel(settings.LogLevel); ok {
		dlog.SetLevel(lvl)
	} else if settings.LogLevel != "" {
		dlog.Warn("unknown log_level %q", settings.LogLevel)
	}
	if args.verbose {
		dlog.SetLevel(dlog.LevelDebug)
	}
	return settings, paths, nil
}
