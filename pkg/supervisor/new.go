// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package supervisor answers watch and unwatch commands
// and fans filesystem events out to every watch that can see them.
//
// A watch is registered and its root subscribed in one step,
// under the registry lock.
// Responses are queued on the emitter inside that step too,
// so a client never sees an event for a watch before its Ok,
// nor after the Ok of its unwatch.
package supervisor

import (
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/pkg/interfaces"
	"github.com/black-desk/watchmux/pkg/paths"
	"github.com/black-desk/watchmux/pkg/registry"
	"go.uber.org/zap"
)

type Supervisor struct {
	handle  interfaces.WatchHandle
	emitter interfaces.Emitter
	decoder interfaces.CommandDecoder
	canon   interfaces.Canonicalizer
	reg     *registry.Registry
	log     *zap.SugaredLogger
}

type Opt func(s *Supervisor) (ret *Supervisor, err error)

func New(opts ...Opt) (ret *Supervisor, err error) {
	defer Wrap(&err, "create supervisor")

	s := &Supervisor{}

	for i := range opts {
		s, err = opts[i](s)
		if err != nil {
			return
		}
	}

	{
		if s.handle == nil {
			err = ErrWatchHandleMissing
			return
		}

		if s.emitter == nil {
			err = ErrEmitterMissing
			return
		}

		if s.canon == nil {
			s.canon = paths.OS{}
		}

		if s.reg == nil {
			s.reg = registry.New()
		}

		if s.log == nil {
			s.log = zap.NewNop().Sugar()
		}
	}

	ret = s

	s.log.Debugw("Create a new supervisor.")

	return
}

func WithWatchHandle(handle interfaces.WatchHandle) Opt {
	return func(s *Supervisor) (ret *Supervisor, err error) {
		if handle == nil {
			err = ErrWatchHandleMissing
			return
		}

		s.handle = handle
		ret = s
		return
	}
}

func WithEmitter(emitter interfaces.Emitter) Opt {
	return func(s *Supervisor) (ret *Supervisor, err error) {
		if emitter == nil {
			err = ErrEmitterMissing
			return
		}

		s.emitter = emitter
		ret = s
		return
	}
}

// WithDecoder sets where commands are read from.
// It is only needed by Run.
func WithDecoder(decoder interfaces.CommandDecoder) Opt {
	return func(s *Supervisor) (ret *Supervisor, err error) {
		if decoder == nil {
			err = ErrDecoderMissing
			return
		}

		s.decoder = decoder
		ret = s
		return
	}
}

func WithCanonicalizer(canon interfaces.Canonicalizer) Opt {
	return func(s *Supervisor) (ret *Supervisor, err error) {
		if canon == nil {
			err = ErrCanonicalizerMissing
			return
		}

		s.canon = canon
		ret = s
		return
	}
}

func WithRegistry(reg *registry.Registry) Opt {
	return func(s *Supervisor) (ret *Supervisor, err error) {
		if reg == nil {
			err = ErrRegistryMissing
			return
		}

		s.reg = reg
		ret = s
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(s *Supervisor) (ret *Supervisor, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		s.log = log
		ret = s
		return
	}
}
