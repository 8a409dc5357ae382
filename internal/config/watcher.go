// ABOUTME: fsnotify-based config watcher with debounced reload callbacks
// ABOUTME: Watches parent directories so editors that replace files atomically still trigger

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mauromedda/tui-dropdown/internal/log"
)

// DefaultDebounce is the window in which bursts of file events coalesce.
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls onChange once per burst of changes to any watched file.
type Watcher struct {
	paths    map[string]struct{}
	dirs     []string
	onChange func()
	debounce *debouncer

	mu       sync.Mutex
	fs       *fsnotify.Watcher
	stopOnce sync.Once
	done     chan struct{}
}

// NewWatcher creates a watcher for the given files. Files need not exist yet;
// their parent directories must.
func NewWatcher(paths []string, onChange func()) *Watcher {
	w := &Watcher{
		paths:    make(map[string]struct{}, len(paths)),
		onChange: onChange,
		debounce: newDebouncer(DefaultDebounce),
		done:     make(chan struct{}),
	}
	seen := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		w.paths[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w
}

// SetDebounce overrides the debounce window. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = newDebouncer(d)
}

// Start registers the watched directories and begins delivering events.
// Directories that do not exist are skipped. Start is a no-op when already
// running.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fs != nil {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	added := 0
	for _, dir := range w.dirs {
		if _, err := os.Stat(dir); err != nil {
			log.Debug("config: skipping watch on %s: %v", dir, err)
			continue
		}
		if err := fw.Add(dir); err != nil {
			log.Warn("config: cannot watch %s: %v", dir, err)
			continue
		}
		added++
	}
	if added == 0 {
		log.Debug("config: no watchable directories")
	}
	w.fs = fw
	go w.loop(fw)
	return nil
}

// Stop closes the underlying watcher and cancels any pending callback.
// Safe to call multiple times.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		fw := w.fs
		w.mu.Unlock()
		w.debounce.cancel()
		if fw != nil {
			_ = fw.Close()
		}
		close(w.done)
	})
}

// Run starts the watcher and blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
	case <-w.done:
	}
	w.Stop()
	return nil
}

func (w *Watcher) loop(fw *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.debounce.trigger(w.onChange)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			log.Warn("config: watcher error: %v", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		abs = ev.Name
	}
	_, ok := w.paths[abs]
	return ok
}

// debouncer runs only the most recently scheduled callback once the window
// elapses without another trigger.
type debouncer struct {
	window time.Duration
	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
}

func newDebouncer(window time.Duration) *debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &debouncer{window: window}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
