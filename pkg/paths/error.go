// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package paths

import "errors"

var (
	ErrEmptyPath = errors.New("path is empty.")
)
