// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package paths

import "path/filepath"

// Simplify returns the form of path that is reported to clients.
func Simplify(path string) string {
	if path == "" {
		return path
	}

	return filepath.Clean(stripVerbatim(path))
}
