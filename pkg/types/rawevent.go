// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

type RawEventType uint8

const (
	RawEventTypeCreate       RawEventType = iota // Create
	RawEventTypeWrite                            // Write
	RawEventTypeRemove                           // Remove
	RawEventTypeRename                           // Rename
	RawEventTypeNoticeWrite                      // NoticeWrite
	RawEventTypeNoticeRemove                     // NoticeRemove
	RawEventTypeChmod                            // Chmod
	RawEventTypeRescan                           // Rescan
	RawEventTypeError                            // Error
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=RawEventType -linecomment

// RawEvent is a debounced filesystem event delivered by a watch handle.
// It never leaves the supervisor.
type RawEvent struct {
	Type RawEventType
	// Path is the affected path, or the destination of a rename.
	Path string
	// OldPath is the source of a rename.
	OldPath string
	Err     error
}

// IsInformational reports whether the event carries no meaning
// for watch subscribers.
func (e *RawEvent) IsInformational() bool {
	switch e.Type {
	case RawEventTypeCreate,
		RawEventTypeWrite,
		RawEventTypeRemove,
		RawEventTypeRename:
		return false
	}
	return true
}
