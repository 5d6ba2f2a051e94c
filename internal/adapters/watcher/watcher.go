package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

const debounceWindow = 300 * time.Millisecond

// Watcher watches a directory tree recursively and emits debounced batches
// of changed paths, relative to the watched root.
type Watcher struct {
	logger   ports.Logger
	excludes []string

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	root    string
	events  chan []string
	stopped chan struct{}
}

// New creates a Watcher. Directories whose base name is in excludes are not
// watched and events under them are ignored.
func New(logger ports.Logger, excludes []string) *Watcher {
	return &Watcher{
		logger:   logger,
		excludes: excludes,
	}
}

var _ ports.Watcher = (*Watcher)(nil)

// Start begins watching root and all of its non-excluded subdirectories.
// Directories created later are added to the watch set as they appear.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw != nil {
		return zerr.New("watcher already started")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "resolving watch root")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "creating file system watcher")
	}

	if err := addRecursive(fsw, abs, w.excludes); err != nil {
		fsw.Close()
		return err
	}

	w.fsw = fsw
	w.root = abs
	w.events = make(chan []string, 16)
	w.stopped = make(chan struct{})

	go w.loop(ctx, fsw, w.events, w.stopped)
	return nil
}

// Stop shuts the watcher down and closes the event channel. Safe to call
// more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	<-w.stopped
	w.fsw = nil
	return err
}

// Events returns the channel carrying debounced change batches. Paths are
// slash-separated and relative to the watched root.
func (w *Watcher) Events() <-chan []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.events
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan []string, stopped chan struct{}) {
	defer close(stopped)
	defer close(out)

	debouncer := NewDebouncer(debounceWindow, func(paths []string) {
		slices.Sort(paths)
		select {
		case out <- paths:
		case <-ctx.Done():
		}
	})

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				debouncer.Flush()
				return
			}
			w.handle(fsw, debouncer, event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "file system watch error"))
		}
	}
}

func (w *Watcher) handle(fsw *fsnotify.Watcher, debouncer *Debouncer, event fsnotify.Event) {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return
	}
	rel = filepath.ToSlash(rel)
	if excludedPath(rel, w.excludes) {
		return
	}

	// New directories need to join the watch set so files created inside
	// them are seen.
	if event.Op.Has(fsnotify.Create) {
		if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
			if err := addRecursive(fsw, event.Name, w.excludes); err != nil {
				w.logger.Warn("could not watch new directory " + rel)
			}
			return
		}
	}

	if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		debouncer.Add(rel)
	}
}

func addRecursive(fsw *fsnotify.Watcher, root string, excludes []string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtrees are skipped, not fatal
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if name == ".git" || name == ".jj" || slices.Contains(excludes, name) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return zerr.With(zerr.Wrap(err, "adding watch"), "path", path)
		}
		return nil
	})
}

func excludedPath(rel string, excludes []string) bool {
	for part := range strings.SplitSeq(rel, "/") {
		if part == ".git" || part == ".jj" || slices.Contains(excludes, part) {
			return true
		}
	}
	return false
}
