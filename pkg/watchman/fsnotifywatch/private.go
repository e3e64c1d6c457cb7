// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsnotifywatch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/black-desk/watchmux/pkg/debounce"
	"github.com/black-desk/watchmux/pkg/paths"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/multierr"
)

func (w *Watcher) receive(ctx context.Context) (err error) {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case e, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.handleError(e)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	w.log.Debugw("Fsnotify event.",
		"event", event,
	)

	switch {
	case event.Has(fsnotify.Create):
		w.deb.Push(debounce.Primitive{Op: debounce.OpCreate, Path: event.Name})
		w.created(event.Name)
	case event.Has(fsnotify.Remove):
		w.deb.Push(debounce.Primitive{Op: debounce.OpRemove, Path: event.Name})
		w.gone(event.Name)
	case event.Has(fsnotify.Rename):
		// NOTE: The destination of a rename arrives as a separate Create.
		w.deb.Push(debounce.Primitive{Op: debounce.OpRenameFrom, Path: event.Name})
		w.gone(event.Name)
	case event.Has(fsnotify.Write):
		w.deb.Push(debounce.Primitive{Op: debounce.OpWrite, Path: event.Name})
	case event.Has(fsnotify.Chmod):
		w.deb.Push(debounce.Primitive{Op: debounce.OpChmod, Path: event.Name})
	}
}

func (w *Watcher) handleError(err error) {
	if errors.Is(err, fsnotify.ErrEventOverflow) {
		w.log.Warnw("Fsnotify queue overflowed.")
		w.deb.Push(debounce.Primitive{Op: debounce.OpRescan})
		return
	}

	w.log.Errorw("Fsnotify error.",
		"error", err,
	)
	w.deb.Push(debounce.Primitive{Op: debounce.OpError, Err: err})
}

// created starts watching a directory that appeared under a root,
// and reports what was put in it before the watch took effect.
func (w *Watcher) created(path string) {
	info, err := os.Lstat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if !w.covered(path) {
		return
	}

	err = w.addTree(path, true)
	if err != nil {
		w.log.Warnw("Failed to watch new directory.",
			"path", path,
			"error", err,
		)
	}
}

func (w *Watcher) gone(path string) {
	w.lock.Lock()
	defer w.lock.Unlock()

	for dir := range w.dirs {
		if !paths.IsUnder(path, dir) {
			continue
		}

		delete(w.dirs, dir)

		// The kernel drops the watch of a removed directory by itself.
		err := w.fw.Remove(dir)
		if err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			w.log.Debugw("Failed to remove watch.",
				"path", dir,
				"error", err,
			)
		}
	}
}

func (w *Watcher) covered(path string) bool {
	for root := range w.roots {
		if paths.IsUnder(root, path) {
			return true
		}
	}
	return false
}

// addTree watches dir and every directory below it.
// With report set, entries found on the way are pushed as creations.
func (w *Watcher) addTree(dir string, report bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			if path == dir {
				return err
			}

			w.log.Debugw("Skip unreadable path.",
				"path", path,
				"error", err,
			)
			return nil
		}

		if report && path != dir {
			w.deb.Push(debounce.Primitive{Op: debounce.OpCreate, Path: path})
		}

		if !d.IsDir() {
			return nil
		}

		if _, ok := w.dirs[path]; ok {
			return nil
		}

		err = w.fw.Add(path)
		if err != nil {
			if path == dir {
				return err
			}

			w.log.Warnw("Failed to watch directory.",
				"path", path,
				"error", err,
			)
			return nil
		}

		w.dirs[path] = struct{}{}
		return nil
	})
}

// forget drops the watches below root that no remaining root needs.
func (w *Watcher) forget(root string) (err error) {
	for dir := range w.dirs {
		if !paths.IsUnder(root, dir) || w.covered(dir) {
			continue
		}

		delete(w.dirs, dir)

		e := w.fw.Remove(dir)
		if e != nil && !errors.Is(e, fsnotify.ErrNonExistentWatch) {
			err = multierr.Append(err, e)
		}
	}
	return
}
