// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "time"

const (
	DefaultConfig = `
version: 1
backend: notify
debounce: 300ms
log-level: info
event-buffer: 64
`
	DefaultBackend     = BackendNotify
	DefaultDebounce    = 300 * time.Millisecond
	DefaultLogLevel    = "info"
	DefaultEventBuffer = 64
)
