// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package notifywatch

import (
	"errors"
	"io/fs"
	"os"

	"github.com/black-desk/watchmux/pkg/debounce"
	"github.com/black-desk/watchmux/pkg/paths"
	"github.com/rjeczalik/notify"
)

func (w *Watcher) forward(sub *subscription) {
	defer w.log.Debugw("Forwarder exited.", "root", sub.root)

	for {
		select {
		case <-sub.stop:
			return
		case info := <-sub.events:
			if w.shadowed(sub.root) {
				continue
			}

			p, ok := primitive(info)
			if !ok {
				w.log.Debugw("Ignore filesystem event.",
					"event", info,
				)
				continue
			}

			w.deb.Push(p)
		}
	}
}

// shadowed reports whether another subscribed root contains root.
// The recursive watch on that root already delivers every event,
// so forwarding ours as well would duplicate them.
func (w *Watcher) shadowed(root string) bool {
	w.lock.Lock()
	defer w.lock.Unlock()

	for other := range w.subs {
		if other != root && paths.IsUnder(other, root) {
			return true
		}
	}
	return false
}

func (w *Watcher) stop(sub *subscription) {
	notify.Stop(sub.events)
	close(sub.stop)
}

func (w *Watcher) stopAll() {
	w.lock.Lock()
	defer w.lock.Unlock()

	for root, sub := range w.subs {
		w.stop(sub)
		delete(w.subs, root)
	}
}

func primitive(info notify.EventInfo) (ret debounce.Primitive, ok bool) {
	ret, ok = nativePrimitive(info)
	if ok {
		return
	}

	ret.Path = info.Path()
	ok = true

	switch info.Event() {
	case notify.Create:
		ret.Op = debounce.OpCreate
	case notify.Remove:
		ret.Op = debounce.OpRemove
	case notify.Write:
		ret.Op = debounce.OpWrite
	case notify.Rename:
		// NOTE: Without a cookie both ends of a rename look the same,
		// look at the filesystem to tell them apart.
		ret.Op = debounce.OpRenameTo
		if _, err := os.Lstat(ret.Path); errors.Is(err, fs.ErrNotExist) {
			ret.Op = debounce.OpRenameFrom
		}
	default:
		ok = false
	}

	return
}
