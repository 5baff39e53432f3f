package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"cdf-insights/internal/models"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 500 * time.Millisecond

type datasetReloader interface {
	Reload(ctx context.Context, trigger, ipAddress string) (*models.LoadReport, error)
}

// DatasetWatcher reloads the dataset when one of its files changes. Editors
// often replace files by rename, so the parent directories are watched and
// events are filtered by path.
type DatasetWatcher struct {
	reloader datasetReloader
	files    map[string]struct{}
	debounce time.Duration
	logger   *slog.Logger
}

// NewDatasetWatcher watches paths; empty paths are ignored
func NewDatasetWatcher(reloader datasetReloader, logger *slog.Logger, paths ...string) (*DatasetWatcher, error) {
	files := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		files[abs] = struct{}{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DatasetWatcher{
		reloader: reloader,
		files:    files,
		debounce: defaultWatchDebounce,
		logger:   logger,
	}, nil
}

// Run blocks until ctx is done. Bursts of events within the debounce window
// trigger a single reload.
func (w *DatasetWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.logger.Info("watching dataset files", "files", len(w.files))

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, tracked := w.files[filepath.Clean(event.Name)]; !tracked {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("dataset file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			report, err := w.reloader.Reload(ctx, models.LoadTriggerWatch, "")
			if err != nil {
				w.logger.Error("dataset reload after file change failed", "error", err)
				continue
			}
			w.logger.Info("dataset reloaded after file change", "version", report.Version.String(), "loaded", report.Loaded)
		}
	}
}
