// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package notifywatch

import (
	"github.com/black-desk/watchmux/pkg/debounce"
	"github.com/rjeczalik/notify"
	"golang.org/x/sys/unix"
)

// nativePrimitive reads the inotify mask,
// which carries the cookie pairing both ends of a rename.
func nativePrimitive(info notify.EventInfo) (ret debounce.Primitive, ok bool) {
	sys, isInotify := info.Sys().(*unix.InotifyEvent)
	if !isInotify || sys == nil {
		return
	}

	ret.Path = info.Path()
	ok = true

	mask := sys.Mask
	switch {
	case mask&unix.IN_Q_OVERFLOW != 0:
		ret.Op = debounce.OpRescan
	case mask&unix.IN_MOVED_FROM != 0:
		ret.Op = debounce.OpRenameFrom
		ret.Cookie = sys.Cookie
	case mask&unix.IN_MOVED_TO != 0:
		ret.Op = debounce.OpRenameTo
		ret.Cookie = sys.Cookie
	case mask&unix.IN_MOVE_SELF != 0:
		ret.Op = debounce.OpRenameFrom
	case mask&unix.IN_CREATE != 0:
		ret.Op = debounce.OpCreate
	case mask&(unix.IN_DELETE|unix.IN_DELETE_SELF) != 0:
		ret.Op = debounce.OpRemove
	case mask&unix.IN_MODIFY != 0:
		ret.Op = debounce.OpWrite
	case mask&unix.IN_ATTRIB != 0:
		ret.Op = debounce.OpChmod
	default:
		ok = false
	}

	return
}
