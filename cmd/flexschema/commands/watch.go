package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// defaultDebounce is the quiet period after the last change before
// regenerating. Editors often write a file in several steps.
const defaultDebounce = 200 * time.Millisecond

// fileWatcher calls onChange after path changes, debounced.
type fileWatcher struct {
	path     string
	debounce time.Duration
	logger   zerolog.Logger
	onChange func() error
}

// Run blocks until ctx is done or onChange fails. The parent directory is
// watched instead of the file so replace-by-rename saves are seen.
func (w *fileWatcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("input changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("file watcher error")
		case <-fire:
			fire = nil
			if err := w.onChange(); err != nil {
				return err
			}
		}
	}
}
