package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Editors often write a file several times in a row
const debounce = 100 * time.Millisecond

// File calls onChange every time the file at path is written or re-created, until ctx is done.
// The parent directory is watched so that files replaced through a rename are still followed.
func File(ctx context.Context, path string, logger *zap.Logger, onChange func() error) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve \"%v\": %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("cannot watch \"%v\": %w", filepath.Dir(target), err)
	}
	logger.Info("watching for changes", zap.String("path", target))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.After(debounce)
			}

		case <-pending:
			pending = nil
			logger.Debug("change detected", zap.String("path", target))
			if err := onChange(); err != nil {
				logger.Error("cannot process change", zap.String("path", target), zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}
