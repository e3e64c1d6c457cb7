// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package debounce coalesces primitive filesystem notifications
// into the raw events the supervisor consumes.
package debounce

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/pkg/types"
	"go.uber.org/zap"
)

const (
	DefaultDelay  = 300 * time.Millisecond
	DefaultBuffer = 64

	minTick       = 10 * time.Millisecond
	minPairWindow = 50 * time.Millisecond
)

type Debouncer struct {
	delay  time.Duration
	buffer int
	clock  clock.Clock
	log    *zap.SugaredLogger

	lock     sync.Mutex
	seq      uint64
	pending  map[string]*entry
	moves    map[uint32]*move
	arrivals map[uint32]*move
	ready    []types.RawEvent

	wake chan struct{}
	out  chan types.RawEvent
}

type entry struct {
	event    types.RawEvent
	deadline time.Time
	seq      uint64
}

type move struct {
	path     string
	deadline time.Time
}

type Opt func(d *Debouncer) (ret *Debouncer, err error)

func New(opts ...Opt) (ret *Debouncer, err error) {
	defer Wrap(&err, "create debouncer")

	d := &Debouncer{
		delay:    DefaultDelay,
		buffer:   DefaultBuffer,
		pending:  map[string]*entry{},
		moves:    map[uint32]*move{},
		arrivals: map[uint32]*move{},
		wake:     make(chan struct{}, 1),
	}

	for i := range opts {
		d, err = opts[i](d)
		if err != nil {
			return
		}
	}

	if d.clock == nil {
		d.clock = clock.New()
	}

	if d.log == nil {
		d.log = zap.NewNop().Sugar()
	}

	d.out = make(chan types.RawEvent, d.buffer)

	ret = d

	d.log.Debugw("Create a new debouncer.",
		"delay", d.delay,
	)

	return
}

func WithDelay(delay time.Duration) Opt {
	return func(d *Debouncer) (ret *Debouncer, err error) {
		if delay < 0 {
			err = ErrNegativeDelay
			return
		}

		d.delay = delay
		ret = d
		return
	}
}

func WithBuffer(size int) Opt {
	return func(d *Debouncer) (ret *Debouncer, err error) {
		if size < 0 {
			size = 0
		}

		d.buffer = size
		ret = d
		return
	}
}

func WithClock(c clock.Clock) Opt {
	return func(d *Debouncer) (ret *Debouncer, err error) {
		if c == nil {
			err = ErrClockMissing
			return
		}

		d.clock = c
		ret = d
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(d *Debouncer) (ret *Debouncer, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		d.log = log
		ret = d
		return
	}
}
