// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervisor

import (
	"context"
	"errors"
	"io"

	"github.com/black-desk/watchmux/pkg/classifier"
	"github.com/black-desk/watchmux/pkg/protocol"
	"github.com/black-desk/watchmux/pkg/registry"
	"github.com/black-desk/watchmux/pkg/types"
)

func (s *Supervisor) watch(cmd *protocol.Watch) error {
	return s.reg.Update(func(tx *registry.Tx) (err error) {
		if tx.Has(cmd.ID) {
			err = &ErrDuplicateWatchID{ID: cmd.ID}
			return
		}

		var root string
		root, err = s.canon.Canonicalize(cmd.Root)
		if err != nil {
			err = &ErrUnresolvablePath{Root: cmd.Root, Err: err}
			return
		}

		err = s.handle.Watch(root)
		if err != nil {
			err = &ErrSubscriptionFailure{Root: root, Err: err}
			return
		}

		err = tx.Insert(cmd.ID, root)
		if err != nil {
			s.unsubscribe(root)
			return
		}

		s.emitter.Emit(protocol.NewOK(cmd.ID))

		s.log.Infow("Watch registered.",
			"id", cmd.ID,
			"root", root,
		)

		return
	})
}

func (s *Supervisor) unwatch(cmd *protocol.Unwatch) error {
	return s.reg.Update(func(tx *registry.Tx) (err error) {
		var watch types.Watch
		watch, err = tx.Remove(cmd.ID)
		if err != nil {
			err = &ErrUnknownWatchID{ID: cmd.ID}
			return
		}

		s.unsubscribe(watch.Root)

		s.emitter.Emit(protocol.NewOK(cmd.ID))

		s.log.Infow("Watch removed.",
			"id", cmd.ID,
			"root", watch.Root,
		)

		return
	})
}

func (s *Supervisor) unsubscribe(root string) {
	err := s.handle.Unwatch(root)
	if err == nil {
		return
	}

	s.log.Warnw("Failed to unsubscribe watch root.",
		"root", root,
		"error", err,
	)
}

// dispatch hands every event to every watch that can see it.
func (s *Supervisor) dispatch(ctx context.Context) (err error) {
	events := s.handle.Events()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			s.notify(&event)
		}
	}
}

func (s *Supervisor) notify(event *types.RawEvent) {
	if event.IsInformational() {
		s.log.Debugw("Drop informational event.",
			"type", event.Type,
			"path", event.Path,
			"error", event.Err,
		)
		return
	}

	s.reg.View(func(watches []types.Watch) {
		for i := range watches {
			for _, e := range classifier.Classify(event, &watches[i]) {
				s.emitter.Emit(protocol.NewEventMessage(&e))
			}
		}
	})
}

type decoded struct {
	cmd protocol.Command
	err error
}

func (s *Supervisor) read(ctx context.Context, out chan<- decoded) {
	for {
		cmd, err := s.decoder.Next()

		select {
		case out <- decoded{cmd, err}:
		case <-ctx.Done():
			return
		}

		var malformed *protocol.MalformedCommandError
		if err != nil && !errors.As(err, &malformed) {
			return
		}
	}
}

// serve handles commands in input order.
func (s *Supervisor) serve(ctx context.Context) (err error) {
	// NOTE: Reading stdin cannot be interrupted,
	// so the reader is left behind when ctx is done.
	commands := make(chan decoded)
	go s.read(ctx, commands)

	for {
		var d decoded

		select {
		case <-ctx.Done():
			return ctx.Err()
		case d = <-commands:
		}

		if d.err == nil {
			s.Handle(d.cmd)
			continue
		}

		var malformed *protocol.MalformedCommandError
		if errors.As(d.err, &malformed) {
			s.log.Warnw("Malformed command.",
				"id", malformed.ID,
				"error", malformed.Err,
			)
			s.emitter.Emit(protocol.NewError(malformed.ID, malformed))
			continue
		}

		if errors.Is(d.err, io.EOF) {
			return ErrInputClosed
		}

		return d.err
	}
}
