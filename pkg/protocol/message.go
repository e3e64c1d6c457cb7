// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package protocol

import (
	"github.com/black-desk/watchmux/pkg/paths"
	"github.com/black-desk/watchmux/pkg/types"
)

// Message is a value written to the output stream,
// either a response to a command or an event.
type Message interface {
	message()
}

type OK struct {
	Type string        `json:"type"`
	ID   types.WatchID `json:"id"`
}

type Error struct {
	Type        string        `json:"type"`
	ID          types.WatchID `json:"id"`
	Description string        `json:"description"`
}

type EventMessage struct {
	Action  types.EventAction `json:"action"`
	WatchID types.WatchID     `json:"watchId"`
	Path    string            `json:"path"`
	OldPath string            `json:"oldPath,omitempty"`
}

func NewOK(id types.WatchID) *OK {
	return &OK{Type: "ok", ID: id}
}

func NewError(id types.WatchID, err error) *Error {
	return &Error{Type: "error", ID: id, Description: err.Error()}
}

func NewEventMessage(event *types.Event) *EventMessage {
	msg := &EventMessage{
		Action:  event.Action,
		WatchID: event.WatchID,
		Path:    paths.Simplify(event.Path),
	}

	if event.Action == types.EventActionRenamed {
		msg.OldPath = paths.Simplify(event.OldPath)
	}

	return msg
}

func (*OK) message()           {}
func (*Error) message()        {}
func (*EventMessage) message() {}
