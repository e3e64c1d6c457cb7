// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import "errors"

var (
	ErrAlreadyExists = errors.New("watch id already exists.")
	ErrNotFound      = errors.New("watch id not found.")
)
