// Package watch regenerates artifacts when description files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long events must settle before a change fires.
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc is called with the sorted set of changed files.
type ChangeFunc func(ctx context.Context, paths []string) error

// Watcher watches a fixed set of files. Directories are watched rather than
// files so that editors replacing a file by rename are still seen.
type Watcher struct {
	files    map[string]struct{}
	debounce time.Duration
	logger   *zap.Logger
	onChange ChangeFunc
}

// New creates a Watcher for paths.
func New(paths []string, debounce time.Duration, logger *zap.Logger, onChange ChangeFunc) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}

		w.files[abs] = struct{}{}
	}

	return w, nil
}

// Run blocks until ctx is done. Errors returned by the change callback are
// logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	dirs := make([]string, 0, len(w.files))
	for f := range w.files {
		dirs = append(dirs, filepath.Dir(f))
	}

	slices.Sort(dirs)

	for _, d := range slices.Compact(dirs) {
		if err := fw.Add(d); err != nil {
			return fmt.Errorf("watching %s: %w", d, err)
		}
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	pending := map[string]struct{}{}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("description changed", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			pending[filepath.Clean(event.Name)] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("file watcher error", zap.Error(err))

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}

			clear(pending)
			slices.Sort(changed)

			if err := w.onChange(ctx, changed); err != nil {
				w.logger.Error("regeneration failed", zap.Strings("paths", changed), zap.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	_, ok := w.files[filepath.Clean(event.Name)]

	return ok
}
