// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package paths

import "os"

// IsUnder reports whether candidate is root itself
// or lies inside the subtree rooted at root.
//
// Both paths must already be canonical.
// The comparison is purely syntactic and works on whole components,
// so "/a/bc" is not under "/a/b".
func IsUnder(root, candidate string) bool {
	rootLen := len(root)
	if rootLen == 0 {
		return false
	}

	if len(candidate) < rootLen {
		return false
	}

	if candidate[:rootLen] != root {
		return false
	}

	if len(candidate) == rootLen {
		return true
	}

	// NOTE: A root like "/" or `C:\` already ends with a separator.
	if os.IsPathSeparator(root[rootLen-1]) {
		return true
	}

	return os.IsPathSeparator(candidate[rootLen])
}
