// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package protocol

import (
	"errors"
	"fmt"

	"github.com/black-desk/watchmux/pkg/types"
)

var (
	ErrReaderMissing  = errors.New("reader is missing.")
	ErrWriterMissing  = errors.New("writer is missing.")
	ErrEncoderMissing = errors.New("encoder is missing.")
	ErrLoggerMissing  = errors.New("logger is missing.")
	ErrLineTooLong    = errors.New("command line is too long.")
)

// MalformedCommandError is a line that is not a valid command.
// ID is the id the line carried, or 0 if it had none.
type MalformedCommandError struct {
	ID  types.WatchID
	Err error
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("Malformed command: %v", e.Err)
}

func (e *MalformedCommandError) Unwrap() error {
	return e.Err
}

type ErrUnknownCommandType struct {
	Type CommandType
}

func (e *ErrUnknownCommandType) Error() string {
	return fmt.Sprintf("unknown command type %q", string(e.Type))
}
