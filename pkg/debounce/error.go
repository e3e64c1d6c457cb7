// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package debounce

import "errors"

var (
	ErrNegativeDelay = errors.New("debounce delay must not be negative.")
	ErrClockMissing  = errors.New("clock is missing.")
	ErrLoggerMissing = errors.New("logger is missing.")
)
