package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce groups the burst of events an editor save produces.
const DefaultReloadDebounce = 500 * time.Millisecond

// Watch clears the bundle cache whenever a document under dir (the OS path
// behind the Translator's fs.FS) is written, created, removed or renamed.
// Events are debounced. Locale directories created later are watched too.
// When dir cannot be watched, Watch logs a warning and only waits.
// Watch blocks until ctx is done.
func (t *Translator) Watch(ctx context.Context, dir string, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("i18n: watcher: %w", err)
	}
	defer w.Close()

	if err := watchTree(w, dir); err != nil {
		// Lookups already treat a missing root as empty bundles; reloading
		// just stays off until the next restart.
		t.logger.Warn("i18n: hot reload disabled", slog.String("dir", dir), slog.Any("error", err))
		<-ctx.Done()
		return nil
	}
	t.logger.Info("i18n: watching locales", slog.String("dir", dir))

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						t.logger.Warn("i18n: watch new locale", slog.String("dir", ev.Name), slog.Any("error", err))
					}
				}
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			reload = time.After(debounce)
		case <-reload:
			reload = nil
			t.ClearCache()
			t.logger.Info("i18n: bundles reloaded")
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			t.logger.Warn("i18n: watcher error", slog.Any("error", err))
		}
	}
}

// watchTree adds dir and its locale subdirectories to w.
func watchTree(w *fsnotify.Watcher, dir string) error {
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if err := w.Add(filepath.Join(dir, entry.Name())); err != nil {
				return fmt.Errorf("watch %s: %w", entry.Name(), err)
			}
		}
	}
	return nil
}
