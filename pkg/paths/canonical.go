// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package paths

import (
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
)

// OS resolves paths against the real filesystem.
type OS struct{}

// Canonicalize makes path absolute and resolves every symlink in it.
// It fails if any component does not exist.
func (OS) Canonicalize(path string) (ret string, err error) {
	defer Wrap(&err, "canonicalize %s", path)

	if path == "" {
		err = ErrEmptyPath
		return
	}

	var abs string
	abs, err = filepath.Abs(path)
	if err != nil {
		return
	}

	var resolved string
	resolved, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return
	}

	ret = filepath.Clean(resolved)
	return
}
