// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package notifywatch is the watch backend built on rjeczalik/notify.
package notifywatch

import (
	"sync"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/pkg/debounce"
	"github.com/black-desk/watchmux/pkg/interfaces"
	"github.com/black-desk/watchmux/pkg/watchman"
	"github.com/rjeczalik/notify"
	"go.uber.org/zap"
)

const DefaultBuffer = 64

type Watcher struct {
	deb    *debounce.Debouncer
	buffer int
	log    *zap.SugaredLogger

	lock sync.Mutex
	subs map[string]*subscription
}

type subscription struct {
	root string
	refs int

	events chan notify.EventInfo
	stop   chan struct{}
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/black-desk/watchmux/pkg/watchman/notifywatch.Watcher -as interfaces.WatchHandle -o ../../interfaces/watchhandle.go
var _ interfaces.WatchHandle = &Watcher{}

type Opt func(w *Watcher) (ret *Watcher, err error)

func New(opts ...Opt) (ret *Watcher, err error) {
	defer Wrap(&err, "create notify watcher")

	w := &Watcher{
		buffer: DefaultBuffer,
		subs:   map[string]*subscription{},
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

	ret = w

	w.log.Debugw("Create a new notify watcher.")

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

// WithBuffer sets the size of the channel each root hands to notify.
func WithBuffer(size int) Opt {
	return func(w *Watcher) (ret *Watcher, err error) {
		if size < 1 {
			size = 1
		}

		w.buffer = size
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
