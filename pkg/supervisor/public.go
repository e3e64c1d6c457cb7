// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervisor

import (
	"context"
	"errors"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/pkg/protocol"
	"github.com/sourcegraph/conc/pool"
)

// Handle runs one command to completion and queues its response.
// The returned error is the one reported to the client, if any.
func (s *Supervisor) Handle(cmd protocol.Command) (err error) {
	switch cmd := cmd.(type) {
	case *protocol.Watch:
		err = s.watch(cmd)
	case *protocol.Unwatch:
		err = s.unwatch(cmd)
	default:
		s.log.Errorw("Unexpected command.",
			"command", cmd,
		)
		return
	}

	if err == nil {
		return
	}

	s.log.Infow("Command failed.",
		"id", cmd.CommandID(),
		"error", err,
	)

	s.emitter.Emit(protocol.NewError(cmd.CommandID(), err))

	return
}

// Run serves commands until the input ends or ctx is done.
// The end of input is a normal exit.
func (s *Supervisor) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "run supervisor")

	if s.decoder == nil {
		err = ErrDecoderMissing
		return
	}

	pool := pool.New().
		WithContext(ctx).
		WithFirstError().
		WithCancelOnError()

	pool.Go(s.handle.Run)
	pool.Go(s.emitter.Run)
	pool.Go(s.dispatch)
	pool.Go(s.serve)

	err = pool.Wait()

	if errors.Is(err, ErrInputClosed) {
		s.log.Infow("Command input closed, exiting.")
		err = nil
		return
	}

	if ctx.Err() != nil {
		err = context.Cause(ctx)
		return
	}

	return
}
