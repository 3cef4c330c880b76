// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"context"
	"log/slog"

	"cogentcore.org/arpes/tensor"
	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the given directory for new Nexus and image files,
// calling fn with each one that loads. A file that does not yet
// load (e.g., because it is still being written) is retried on
// its next write. Watch blocks until the context is done.
func Watch(ctx context.Context, dir string, fn func(arr *tensor.Labeled)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	slog.Info("loader: watching", "dir", dir)
	seen := map[string]bool{}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if seen[ev.Name] {
				continue
			}
			kind, err := Detect(ev.Name)
			if err != nil || (kind != Nexus && kind != Image) {
				slog.Debug("loader: watch skipping", "file", ev.Name, "kind", kind, "err", err)
				continue
			}
			arr, err := Open(ev.Name)
			if err != nil {
				slog.Debug("loader: watch not loaded yet", "file", ev.Name, "err", err)
				continue
			}
			seen[ev.Name] = true
			fn(arr)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
