// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package watchman holds what the watch backends share.
//
// A backend keeps a reference counted set of subscribed roots:
// watching a root twice needs two unwatches before the OS subscription
// goes away. Every backend watches recursively and feeds a debouncer.
package watchman

import "errors"

var (
	ErrNotWatched       = errors.New("root is not watched.")
	ErrDebouncerMissing = errors.New("debouncer is missing.")
	ErrLoggerMissing    = errors.New("logger is missing.")
)
