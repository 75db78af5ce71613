// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/editkit/memstore"
	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long the file must be quiet after a change
// before it is reloaded, so that a save in progress is not read.
var WatchDelay = 100 * time.Millisecond

// Watch reloads the given store from the given file every time the
// file changes, until the context is done. The optional onReload
// function is called after every reload attempt, with its error.
// Reload errors are logged and do not stop watching.
func Watch(ctx context.Context, filename string, s *memstore.Store, onReload func(err error)) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("filestore: watch %s: %w", filename, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("filestore: watch %s: %w", filename, err)
	}
	defer watcher.Close()
	// the directory is watched, as editors often replace files by renaming
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("filestore: watch %s: %w", filename, err)
	}

	timer := time.NewTimer(WatchDelay)
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
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(WatchDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("filestore: watch error", "file", filename, "err", err)
		case <-timer.C:
			err := Reload(s, abs)
			if err != nil {
				slog.Warn("filestore: reload failed", "file", filename, "err", err)
			} else {
				slog.Info("filestore: reloaded", "file", filename, "objects", s.Len())
			}
			if onReload != nil {
				onReload(err)
			}
		}
	}
}
