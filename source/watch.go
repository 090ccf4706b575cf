// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ggchart"
)

// Watch loads the data set at path, then reloads it each time the file is
// written or replaced. Every load result, including failures, is passed to
// onLoad on the calling goroutine.
//
// The parent directory is watched rather than the file so editors that save
// by rename keep triggering reloads. Watch blocks until ctx is done and
// returns ctx.Err().
func Watch(ctx context.Context, path string, onLoad func(*Document, error), opts ...Option) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("source: watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("source: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("source: watch %s: %w", filepath.Dir(abs), err)
	}

	onLoad(Load(abs, opts...))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return ctx.Err()
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				ggchart.Logger().Debug("source: change", "path", abs, "op", ev.Op.String())
				onLoad(Load(abs, opts...))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return ctx.Err()
			}
			ggchart.Logger().Warn("source: watch error", "path", abs, "err", err)
		}
	}
}
