package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors path and hands the new contents to onChange each time the
// file is written. It runs until ctx is cancelled.
//
// A read failure or an error from onChange is logged and the caller keeps
// whatever it loaded last.
func Watch(ctx context.Context, path string, onChange func([]byte) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	slog.Info("config: watching for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Atomic saves show up as create after a rename.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			data, err := os.ReadFile(path)
			if err != nil {
				slog.Error("config: reload failed, keeping previous", "path", path, "err", err)
				continue
			}
			if err := onChange(data); err != nil {
				slog.Error("config: reload rejected, keeping previous", "path", path, "err", err)
				continue
			}
			slog.Info("config: reloaded", "path", path)

			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
