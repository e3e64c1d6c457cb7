// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervisor

import (
	"errors"
	"fmt"

	"github.com/black-desk/watchmux/pkg/types"
)

var (
	ErrWatchHandleMissing   = errors.New("watch handle is missing.")
	ErrEmitterMissing       = errors.New("emitter is missing.")
	ErrDecoderMissing       = errors.New("command decoder is missing.")
	ErrCanonicalizerMissing = errors.New("canonicalizer is missing.")
	ErrRegistryMissing      = errors.New("registry is missing.")
	ErrLoggerMissing        = errors.New("logger is missing.")

	// ErrInputClosed ends Run without error once the command stream is over.
	ErrInputClosed = errors.New("command input closed.")
)

type ErrDuplicateWatchID struct {
	ID types.WatchID
}

func (e *ErrDuplicateWatchID) Error() string {
	return fmt.Sprintf("Already registered a watch with id %d", e.ID)
}

type ErrUnknownWatchID struct {
	ID types.WatchID
}

func (e *ErrUnknownWatchID) Error() string {
	return fmt.Sprintf("No watch exists with id %d", e.ID)
}

type ErrUnresolvablePath struct {
	Root string
	Err  error
}

func (e *ErrUnresolvablePath) Error() string {
	return fmt.Sprintf("Cannot resolve %s: %v", e.Root, e.Err)
}

func (e *ErrUnresolvablePath) Unwrap() error {
	return e.Err
}

type ErrSubscriptionFailure struct {
	Root string
	Err  error
}

func (e *ErrSubscriptionFailure) Error() string {
	return fmt.Sprintf("Cannot watch %s: %v", e.Root, e.Err)
}

func (e *ErrSubscriptionFailure) Unwrap() error {
	return e.Err
}
