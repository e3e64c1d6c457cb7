// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package classifier turns raw filesystem events
// into what a single watch can observe about its own subtree.
package classifier

import (
	"github.com/black-desk/watchmux/pkg/paths"
	"github.com/black-desk/watchmux/pkg/types"
)

// Classify maps event to the events watch should receive.
//
// A rename crossing the boundary of the watch root
// is reported as a deletion (path left the subtree)
// or a creation (path entered the subtree),
// never as a rename of something the watch could not see.
func Classify(event *types.RawEvent, watch *types.Watch) []types.Event {
	under := func(path string) bool {
		return paths.IsUnder(watch.Root, path)
	}

	single := func(action types.EventAction, path string) []types.Event {
		return []types.Event{{
			Action:  action,
			WatchID: watch.ID,
			Path:    path,
		}}
	}

	switch event.Type {
	case types.RawEventTypeCreate:
		if under(event.Path) {
			return single(types.EventActionCreated, event.Path)
		}
	case types.RawEventTypeWrite:
		if under(event.Path) {
			return single(types.EventActionModified, event.Path)
		}
	case types.RawEventTypeRemove:
		if under(event.Path) {
			return single(types.EventActionDeleted, event.Path)
		}
	case types.RawEventTypeRename:
		oldUnder, newUnder := under(event.OldPath), under(event.Path)
		switch {
		case oldUnder && newUnder:
			return []types.Event{{
				Action:  types.EventActionRenamed,
				WatchID: watch.ID,
				Path:    event.Path,
				OldPath: event.OldPath,
			}}
		case oldUnder:
			return single(types.EventActionDeleted, event.OldPath)
		case newUnder:
			return single(types.EventActionCreated, event.Path)
		}
	}

	return nil
}
