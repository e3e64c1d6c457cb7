// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package protocol is the newline-delimited JSON protocol
// spoken with the parent process:
// commands come in on one stream,
// responses and events go out on another.
package protocol

import "github.com/black-desk/watchmux/pkg/types"

type CommandType string

const (
	CommandTypeWatch   CommandType = "watch"
	CommandTypeUnwatch CommandType = "unwatch"
)

// Command is either a *Watch or an *Unwatch.
type Command interface {
	CommandID() types.WatchID
	command()
}

type Watch struct {
	ID   types.WatchID
	Root string
}

type Unwatch struct {
	ID types.WatchID
}

func (c *Watch) CommandID() types.WatchID   { return c.ID }
func (c *Unwatch) CommandID() types.WatchID { return c.ID }

func (*Watch) command()   {}
func (*Unwatch) command() {}

// wire forms

type commandHead struct {
	Type CommandType    `json:"type" validate:"required"`
	ID   *types.WatchID `json:"id" validate:"required"`
}

type watchBody struct {
	Root *string `json:"root" validate:"required"`
}
