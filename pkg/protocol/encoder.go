// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package protocol

import (
	"bytes"
	"encoding/json"
	"io"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/pkg/pool"
)

var bufferPool = pool.New(
	func() *bytes.Buffer {
		return &bytes.Buffer{}
	},
	func(buf *bytes.Buffer) *bytes.Buffer {
		buf.Reset()
		return buf
	},
)

// Encoder writes one JSON value per line.
// Each message reaches the writer in a single Write call.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) (ret *Encoder, err error) {
	if w == nil {
		err = ErrWriterMissing
		return
	}

	ret = &Encoder{w: w}
	return
}

func (e *Encoder) Encode(msg Message) (err error) {
	defer Wrap(&err, "encode message")

	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	// NOTE: json.Encoder terminates every value with a newline.
	err = enc.Encode(msg)
	if err != nil {
		return
	}

	_, err = e.w.Write(buf.Bytes())
	return
}
