// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package protocol

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 16 * 1024 * 1024
)

type Decoder struct {
	reader   *bufio.Reader
	line     []byte
	validate *validator.Validate
	log      *zap.SugaredLogger
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/black-desk/watchmux/pkg/protocol.Decoder -as interfaces.CommandDecoder -o ../interfaces/decoder.go

type DecoderOpt func(d *Decoder) (ret *Decoder, err error)

func NewDecoder(opts ...DecoderOpt) (ret *Decoder, err error) {
	defer Wrap(&err, "create command decoder")

	d := &Decoder{
		validate: validator.New(),
	}

	for i := range opts {
		d, err = opts[i](d)
		if err != nil {
			return
		}
	}

	if d.reader == nil {
		err = ErrReaderMissing
		return
	}

	if d.log == nil {
		d.log = zap.NewNop().Sugar()
	}

	ret = d

	d.log.Debugw("Create a new command decoder.")

	return
}

func WithReader(r io.Reader) DecoderOpt {
	return func(d *Decoder) (ret *Decoder, err error) {
		if r == nil {
			err = ErrReaderMissing
			return
		}

		d.reader = bufio.NewReaderSize(r, initialLineBuffer)
		ret = d
		return
	}
}

func WithDecoderLogger(log *zap.SugaredLogger) DecoderOpt {
	return func(d *Decoder) (ret *Decoder, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		d.log = log
		ret = d
		return
	}
}

// Next returns the command on the next non-blank line.
// It returns io.EOF at the end of input,
// and a *MalformedCommandError for a line that is not a command,
// after which decoding may go on.
func (d *Decoder) Next() (ret Command, err error) {
	for {
		var line []byte
		line, err = d.readLine()
		if errors.Is(err, ErrLineTooLong) {
			d.log.Debugw("Command line too long.",
				"limit", maxLineLength,
			)
			err = &MalformedCommandError{Err: err}
			return
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			Wrap(&err, "read command")
			return
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		d.log.Debugw("Command line received.",
			"line", string(line),
		)

		return d.decode(line)
	}
}

// readLine returns the next line without its newline.
// The rest of a line longer than maxLineLength is consumed
// and ErrLineTooLong returned in its place.
func (d *Decoder) readLine() (ret []byte, err error) {
	d.line = d.line[:0]
	tooLong := false

	for {
		chunk, readErr := d.reader.ReadSlice('\n')

		if !tooLong && len(d.line)+len(chunk) > maxLineLength {
			tooLong = true
			d.line = d.line[:0]
		}
		if !tooLong {
			d.line = append(d.line, chunk...)
		}

		switch {
		case readErr == nil:
		case errors.Is(readErr, bufio.ErrBufferFull):
			continue
		case errors.Is(readErr, io.EOF):
			if !tooLong && len(d.line) == 0 {
				err = io.EOF
				return
			}
		default:
			err = readErr
			return
		}

		if tooLong {
			err = ErrLineTooLong
			return
		}

		ret = d.line
		return
	}
}

func (d *Decoder) decode(line []byte) (ret Command, err error) {
	var head commandHead
	err = json.Unmarshal(line, &head)
	if err != nil {
		err = &MalformedCommandError{Err: err}
		return
	}

	var id = head.ID
	defer func() {
		if err == nil {
			return
		}
		malformed := &MalformedCommandError{Err: err}
		if id != nil {
			malformed.ID = *id
		}
		err = malformed
	}()

	err = d.validate.Struct(&head)
	if err != nil {
		return
	}

	switch head.Type {
	case CommandTypeWatch:
		var body watchBody
		err = json.Unmarshal(line, &body)
		if err != nil {
			return
		}

		err = d.validate.Struct(&body)
		if err != nil {
			return
		}

		ret = &Watch{ID: *head.ID, Root: *body.Root}
	case CommandTypeUnwatch:
		ret = &Unwatch{ID: *head.ID}
	default:
		err = &ErrUnknownCommandType{Type: head.Type}
	}

	return
}
