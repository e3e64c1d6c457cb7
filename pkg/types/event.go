// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

type EventAction uint8

const (
	EventActionModified EventAction = iota // modified
	EventActionCreated                     // created
	EventActionDeleted                     // deleted
	EventActionRenamed                     // renamed
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=EventAction -linecomment

// Event is what a single watch observes about its own subtree.
type Event struct {
	Action  EventAction
	WatchID WatchID
	Path    string
	// OldPath is only set for EventActionRenamed.
	OldPath string
}

func (a EventAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
