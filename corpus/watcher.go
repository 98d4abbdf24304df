package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce collapses the burst of events produced by one upload
const DefaultDebounce = 500 * time.Millisecond

// Reloader is what the watcher triggers on shard changes
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher reloads the corpus when shard files in a directory change
type Watcher struct {
	watcher  *fsnotify.Watcher
	target   Reloader
	logger   logrus.FieldLogger
	debounce time.Duration
}

// NewWatcher watches dir for JSON shard changes
func NewWatcher(dir string, target Reloader, logger logrus.FieldLogger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Watcher{watcher: w, target: target, logger: logger, debounce: DefaultDebounce}, nil
}

// Run blocks until ctx is done, reloading after each settled burst of changes
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.WithField("file", event.Name).Debug("corpus shard changed")
			timer.Reset(w.debounce)
		case <-timer.C:
			if err := w.target.Reload(ctx); err != nil {
				w.logger.WithError(err).Warn("corpus reload after file change failed")
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("corpus watcher error")
		}
	}
}
