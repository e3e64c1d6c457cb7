// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package protocol

import (
	"context"
	"sync"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// Emitter serializes every message of the process onto one encoder.
// Emit only queues, so it may be called while holding other locks;
// Run does the writing.
type Emitter struct {
	enc *Encoder
	log *zap.SugaredLogger

	lock  sync.Mutex
	queue []Message
	wake  chan struct{}
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/black-desk/watchmux/pkg/protocol.Emitter -as interfaces.Emitter -o ../interfaces/emitter.go

type EmitterOpt func(e *Emitter) (ret *Emitter, err error)

func NewEmitter(opts ...EmitterOpt) (ret *Emitter, err error) {
	defer Wrap(&err, "create emitter")

	e := &Emitter{
		wake: make(chan struct{}, 1),
	}

	for i := range opts {
		e, err = opts[i](e)
		if err != nil {
			return
		}
	}

	if e.enc == nil {
		err = ErrEncoderMissing
		return
	}

	if e.log == nil {
		e.log = zap.NewNop().Sugar()
	}

	ret = e

	e.log.Debugw("Create a new emitter.")

	return
}

func WithEncoder(enc *Encoder) EmitterOpt {
	return func(e *Emitter) (ret *Emitter, err error) {
		if enc == nil {
			err = ErrEncoderMissing
			return
		}

		e.enc = enc
		ret = e
		return
	}
}

func WithEmitterLogger(log *zap.SugaredLogger) EmitterOpt {
	return func(e *Emitter) (ret *Emitter, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		e.log = log
		ret = e
		return
	}
}

// Emit queues msg behind everything emitted before. It never blocks.
func (e *Emitter) Emit(msg Message) {
	e.lock.Lock()
	e.queue = append(e.queue, msg)
	e.lock.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Run writes queued messages until ctx is done,
// then writes what is still queued and returns.
func (e *Emitter) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "run emitter")

	for {
		select {
		case <-ctx.Done():
			err = e.flush()
			if err != nil {
				return
			}

			e.log.Debugw("Emitter drained.")
			return ctx.Err()
		case <-e.wake:
			err = e.flush()
			if err != nil {
				return
			}
		}
	}
}

func (e *Emitter) flush() (err error) {
	for {
		e.lock.Lock()
		queue := e.queue
		e.queue = nil
		e.lock.Unlock()

		if len(queue) == 0 {
			return
		}

		for i := range queue {
			err = e.enc.Encode(queue[i])
			if err != nil {
				return
			}
		}
	}
}
