// Package watcher reloads measurement files when they change on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/gogarment/pkg/garment"
)

// DefaultDebounce collapses the burst of events a single save produces
const DefaultDebounce = 200 * time.Millisecond

// RecordWatcher watches one measurement file and reports every successfully loaded record.
// Callbacks run on a timer goroutine; hosts hand the record to their own thread.
type RecordWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	debounce time.Duration
	timer    *time.Timer
	closed   bool

	onRecord func(garment.Measurements)
	onError  func(error)
}

// NewRecordWatcher creates a watcher for path. onError may be nil.
func NewRecordWatcher(path string, debounce time.Duration, onRecord func(garment.Measurements), onError func(error)) (*RecordWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// editors often save by renaming a temp file over the original,
	// which drops a watch on the file itself
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	if onError == nil {
		onError = func(error) {}
	}

	return &RecordWatcher{
		watcher:  watcher,
		path:     absPath,
		debounce: debounce,
		onRecord: onRecord,
		onError:  onError,
	}, nil
}

// Path returns the absolute path being watched
func (rw *RecordWatcher) Path() string {
	return rw.path
}

// Start begins watching for file changes
func (rw *RecordWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-rw.watcher.Events:
				if !ok {
					return
				}
				rw.handleEvent(event)

			case err, ok := <-rw.watcher.Errors:
				if !ok {
					return
				}
				rw.onError(fmt.Errorf("watcher error: %w", err))
			}
		}
	}()
}

// handleEvent schedules a debounced reload for writes to the watched file
func (rw *RecordWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != rw.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.closed {
		return
	}
	if rw.timer != nil {
		rw.timer.Stop()
	}
	rw.timer = time.AfterFunc(rw.debounce, rw.reload)
}

func (rw *RecordWatcher) reload() {
	rw.mu.Lock()
	closed := rw.closed
	rw.mu.Unlock()
	if closed {
		return
	}

	m, err := garment.Load(rw.path)
	if err != nil {
		rw.onError(err)
		return
	}
	rw.onRecord(m)
}

// Close stops the watcher. Calling it again is a no-op.
func (rw *RecordWatcher) Close() error {
	rw.mu.Lock()
	if rw.closed {
		rw.mu.Unlock()
		return nil
	}
	rw.closed = true
	if rw.timer != nil {
		rw.timer.Stop()
	}
	rw.mu.Unlock()

	return rw.watcher.Close()
}
