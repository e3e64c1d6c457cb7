// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows

package paths

import "strings"

const verbatimPrefix = `\\?\`

// stripVerbatim turns `\\?\C:\dir` into `C:\dir`.
// UNC (`\\?\UNC\...`) and device paths are left alone,
// as they have no simpler equivalent.
func stripVerbatim(path string) string {
	if !strings.HasPrefix(path, verbatimPrefix) {
		return path
	}

	rest := path[len(verbatimPrefix):]
	if len(rest) < 3 || rest[1] != ':' || rest[2] != '\\' {
		return path
	}

	drive := rest[0]
	if !('a' <= drive && drive <= 'z' || 'A' <= drive && drive <= 'Z') {
		return path
	}

	// Some names are only reachable through the verbatim form.
	if strings.ContainsAny(rest[3:], `<>"|?*`) {
		return path
	}

	return rest
}
