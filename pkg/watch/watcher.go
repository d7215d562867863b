package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config contains configuration for the document watcher.
type Config struct {
	// Root is the directory whose markdown files are watched.
	Root string

	// DebounceInterval is the quiet period required after a burst of
	// filesystem events before revalidation triggers (default: 250ms).
	DebounceInterval time.Duration
}

// DefaultConfig returns the default watcher configuration for root.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:             root,
		DebounceInterval: 250 * time.Millisecond,
	}
}

// Watcher watches a steering-document tree and triggers revalidation when
// markdown files change. Rapid event bursts (editor save sequences) are
// debounced into a single trigger.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *Config
	debounce *debouncer

	mu      sync.Mutex
	running bool
}

// New creates a watcher for the configured root.
func New(config *Config, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		return nil, fmt.Errorf("watch config is required")
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = 250 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		logger:   logger,
		config:   config,
		debounce: newDebouncer(config.DebounceInterval),
	}, nil
}

// Watch blocks until ctx is cancelled, calling onChange after each debounced
// burst of markdown changes under the root. Directories created while
// watching are added to the watch set so new subtrees are covered.
func (w *Watcher) Watch(ctx context.Context, onChange func() error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()

		w.debounce.stop()
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("failed to close watcher", "error", err)
		}
	}()

	if err := w.addTree(w.config.Root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.config.Root, err)
	}

	w.logger.Info("watching for changes",
		"root", w.config.Root,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// New directories need explicit registration.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Error("failed to watch new directory",
							"path", event.Name, "error", err)
					}
				}
			}

			if !w.shouldProcess(event) {
				continue
			}

			w.logger.Debug("document event", "path", event.Name, "op", event.Op.String())

			w.debounce.trigger(func() {
				if err := onChange(); err != nil {
					w.logger.Error("revalidation failed", "error", err)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			// Keep watching despite errors on individual paths.
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// addTree registers dir and every non-hidden subdirectory with the watcher.
func (w *Watcher) addTree(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(filepath.Base(path), ".") && path != dir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", path, err)
			}
			w.logger.Debug("watching directory", "path", path)
		}
		return nil
	})
}

// shouldProcess filters events down to meaningful markdown changes.
func (w *Watcher) shouldProcess(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(name, ".md")
}

// debouncer collapses rapid event bursts: the callback runs only after a
// full quiet interval.
type debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
