package tui

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/dbmrq/skyset/internal/logging"
)

// DefaultDebounce collapses the burst of events one save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher signals when the document file changes. It never reads the
// file; the model reloads through the controller on its own goroutine.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	changes  chan struct{}
	errs     chan error
	stop     chan struct{}
	stopOnce sync.Once
	closed   bool
}

// NewWatcher creates a watcher for path. Call Start to begin watching.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		changes:  make(chan struct{}, 1),
		errs:     make(chan error, 1),
		stop:     make(chan struct{}),
	}
}

// Start watches the directory containing the file, which also catches
// atomic saves that rename a temporary file over it. The directory must
// exist.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return err
	}

	w.mu.Lock()
	w.watcher = fsw
	w.mu.Unlock()

	go w.loop(fsw)

	logging.Debug("watching document directory", "dir", dir, "path", w.path)
	return nil
}

// Changes delivers at most one pending change notification.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Stop stops watching and closes both channels.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		w.mu.Lock()
		fsw := w.watcher
		w.mu.Unlock()
		if fsw != nil {
			fsw.Close()
		} else {
			w.finish()
		}
	})
}

func (w *Watcher) finish() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.changes)
	close(w.errs)
}

func (w *Watcher) signal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// relevant reports whether event may have changed the document: any write,
// create, rename or remove of the file itself, or a create or rename that
// lands on its basename.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	eventPath := filepath.Clean(event.Name)
	target := filepath.Clean(w.path)
	if eventPath == target {
		return true
	}
	return filepath.Base(eventPath) == filepath.Base(target) &&
		(event.Has(fsnotify.Create) || event.Has(fsnotify.Rename))
}

func (w *Watcher) loop(fsw *fsnotify.Watcher) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		w.finish()
	}()

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.signal)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logging.Warn("document watcher error", "error", err)
			w.mu.Lock()
			if !w.closed {
				select {
				case w.errs <- err:
				default:
				}
			}
			w.mu.Unlock()
		}
	}
}

// waitForChange blocks until the watcher reports a change or an error.
// It returns nil once the watcher is stopped.
func waitForChange(w *Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return FileChangedMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}
