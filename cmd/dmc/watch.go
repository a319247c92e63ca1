package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 50 * time.Millisecond

// watchFile runs fn once and again after every change to path until ctx is done.
// The parent directory is watched because editors often replace files on save.
func watchFile(ctx context.Context, path string, logger *slog.Logger, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	if err := fn(); err != nil {
		logger.Error("conversion failed", "path", path, "error", err)
	}

	var (
		timer  *time.Timer
		fire   <-chan time.Time
		events = watcher.Events
		errs   = watcher.Errors
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

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("input changed", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := fn(); err != nil {
				logger.Error("conversion failed", "path", path, "error", err)
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Error("fsnotify error", "error", err)
		}
	}
}
