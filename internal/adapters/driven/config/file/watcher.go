package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ConfigWatcher = (*Watcher)(nil)

// defaultDebounce collapses the burst of events an editor produces on save.
const defaultDebounce = 150 * time.Millisecond

// Watcher reports edits to the config file. It watches the directory rather
// than the file so that editors which save by rename are still seen.
type Watcher struct {
	filePath string
	debounce time.Duration
}

// NewWatcher creates a watcher for the file at filePath.
func NewWatcher(filePath string) *Watcher {
	return &Watcher{
		filePath: filePath,
		debounce: defaultDebounce,
	}
}

// Watch blocks until ctx is cancelled, calling onChange after each settled
// burst of writes to the config file.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.filePath)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("Watching %s for config changes", w.filePath)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	target := filepath.Clean(w.filePath)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error: %v", err)

		case <-timer.C:
			logger.Debug("Config file changed")
			onChange()
		}
	}
}
