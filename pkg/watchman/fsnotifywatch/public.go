// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fsnotifywatch

import (
	"context"
	"os"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/pkg/types"
	"github.com/black-desk/watchmux/pkg/watchman"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"
)

func (w *Watcher) Events() <-chan types.RawEvent {
	return w.deb.Events()
}

func (w *Watcher) Run(ctx context.Context) (err error) {
	defer func() {
		err = multierr.Append(err, w.fw.Close())
	}()

	w.log.Debugw("Start fsnotify watcher.")
	defer w.log.Debugw("Fsnotify watcher exited.")

	pool := pool.New().
		WithContext(ctx).
		WithFirstError().
		WithCancelOnError()

	pool.Go(w.deb.Run)
	pool.Go(w.receive)

	return pool.Wait()
}

// Watch adds a watch on root and every directory below it.
// Watching an already watched root only takes another reference.
func (w *Watcher) Watch(root string) (err error) {
	defer Wrap(&err, "watch %s", root)

	w.lock.Lock()
	defer w.lock.Unlock()

	if refs, ok := w.roots[root]; ok {
		w.roots[root] = refs + 1
		return
	}

	var info os.FileInfo
	info, err = os.Stat(root)
	if err != nil {
		return
	}

	if !info.IsDir() {
		err = w.fw.Add(root)
		if err != nil {
			return
		}
		w.dirs[root] = struct{}{}
	} else {
		err = w.addTree(root, false)
		if err != nil {
			w.forget(root)
			return
		}
	}

	w.roots[root] = 1

	w.log.Infow("Root subscribed.",
		"root", root,
		"directories", len(w.dirs),
	)

	return
}

// Unwatch drops one reference to root.
// With the last one goes every watch no other root needs.
func (w *Watcher) Unwatch(root string) (err error) {
	defer Wrap(&err, "unwatch %s", root)

	w.lock.Lock()
	defer w.lock.Unlock()

	refs, ok := w.roots[root]
	if !ok {
		err = watchman.ErrNotWatched
		return
	}

	if refs > 1 {
		w.roots[root] = refs - 1
		return
	}

	delete(w.roots, root)
	err = w.forget(root)

	w.log.Infow("Root unsubscribed.",
		"root", root,
	)

	return
}
