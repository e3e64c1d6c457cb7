// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package notifywatch

import (
	"github.com/black-desk/watchmux/pkg/debounce"
	"github.com/rjeczalik/notify"
)

func nativePrimitive(notify.EventInfo) (ret debounce.Primitive, ok bool) {
	return
}
