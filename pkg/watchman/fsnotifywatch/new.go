// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fsnotifywatch is the watch backend built on fsnotify.
//
// fsnotify only watches single directories,
// so every directory below a root gets its own watch,
// and directories created later are added as they appear.
package fsnotifywatch

import (
	"sync"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/pkg/debounce"
	"github.com/black-desk/watchmux/pkg/interfaces"
	"github.com/black-desk/watchmux/pkg/watchman"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type Watcher struct {
	deb *debounce.Debouncer
	fw  *fsnotify.Watcher
	log *zap.SugaredLogger

	lock  sync.Mutex
	roots map[string]int
	dirs  map[string]struct{}
}

var _ interfaces.WatchHandle = &Watcher{}

type Opt func(w *Watcher) (ret *Watcher, err error)

func New(opts ...Opt) (ret *Watcher, err error) {
	defer Wrap(&err, "create fsnotify watcher")

	w := &Watcher{
		roots: map[string]int{},
		dirs:  map[string]struct{}{},
	}

	for i := range opts {
		w, err = opts[i](w)
		if err != nil {
			return
		}
	}

	if w.deb == nil {
		err = watchman.ErrDebouncerMissing
		return
	}

	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}

	w.fw, err = fsnotify.NewWatcher()
	if err != nil {
		return
	}

	ret = w

	w.log.Debugw("Create a new fsnotify watcher.")

	return
}

func WithDebouncer(deb *debounce.Debouncer) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if deb == nil {
			err = watchman.ErrDebouncerMissing
			return
		}

		w.deb = deb
		ret = w
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if log == nil {
			err = watchman.ErrLoggerMissing
			return
		}

		w.log = log
		ret = w
		return
	}
}
