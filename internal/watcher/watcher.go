// Package watcher notifies callers when the edges file changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the file must stay quiet before a change fires
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a file for changes
type Watcher struct {
	path     string
	onChange func()
	debounce time.Duration
	log      *zap.Logger
}

// New creates a new file watcher
func New(path string, log *zap.Logger, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		debounce: DefaultDebounce,
		log:      log,
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch starts watching the file for changes.
// It blocks until the context is cancelled or an error occurs.
// Cancellation is not an error.
func (w *Watcher) Watch(ctx context.Context) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Editors often replace the file instead of writing it, so watch the directory
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	w.log.Info("Watching edges file for changes", zap.String("path", target))

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	stopTimer := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	defer stopTimer()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				w.log.Info("Edges file changed", zap.String("path", target))
				w.onChange()
			})
			mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("Watcher error", zap.Error(err))

		case <-ctx.Done():
			return nil
		}
	}
}
