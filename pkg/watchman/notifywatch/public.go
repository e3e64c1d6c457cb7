// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatch

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/pkg/types"
	"github.com/black-desk/watchmux/pkg/watchman"
	"github.com/rjeczalik/notify"
)

func (w *Watcher) Events() <-chan types.RawEvent {
	return w.deb.Events()
}

// Run delivers events until ctx is done,
// then drops every remaining subscription.
func (w *Watcher) Run(ctx context.Context) (err error) {
	defer w.stopAll()

	w.log.Debugw("Start notify watcher.")
	defer w.log.Debugw("Notify watcher exited.")

	return w.deb.Run(ctx)
}

// Watch subscribes root recursively.
// Watching an already subscribed root only takes another reference.
func (w *Watcher) Watch(root string) (err error) {
	defer Wrap(&err, "watch %s", root)

	w.lock.Lock()
	defer w.lock.Unlock()

	if sub, ok := w.subs[root]; ok {
		sub.refs++
		w.log.Debugw("Root already subscribed.",
			"root", root,
			"refs", sub.refs,
		)
		return
	}

	var info os.FileInfo
	info, err = os.Stat(root)
	if err != nil {
		return
	}

	pattern := root
	if info.IsDir() {
		pattern = filepath.Join(root, "...")
	}

	// FIXME:
	// github.com/rjeczalik/notify drop events if receiver is too slow.
	// https://github.com/rjeczalik/notify/issues/85
	// https://github.com/rjeczalik/notify/issues/98
	sub := &subscription{
		root:   root,
		refs:   1,
		events: make(chan notify.EventInfo, w.buffer),
		stop:   make(chan struct{}),
	}

	err = notify.Watch(pattern, sub.events, notify.All)
	if err != nil {
		return
	}

	w.subs[root] = sub
	go w.forward(sub)

	w.log.Infow("Root subscribed.",
		"root", root,
	)

	return
}

// Unwatch drops one reference to root,
// and the OS subscription with the last one.
func (w *Watcher) Unwatch(root string) (err error) {
	defer Wrap(&err, "unwatch %s", root)

	w.lock.Lock()
	defer w.lock.Unlock()

	sub, ok := w.subs[root]
	if !ok {
		err = watchman.ErrNotWatched
		return
	}

	sub.refs--
	if sub.refs > 0 {
		return
	}

	delete(w.subs, root)
	w.stop(sub)

	w.log.Infow("Root unsubscribed.",
		"root", root,
	)

	return
}
