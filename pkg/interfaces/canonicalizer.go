// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package interfaces

// Canonicalizer resolves a client supplied root
// into the form watch roots and event paths are compared in.
type Canonicalizer interface {
	Canonicalize(path string) (string, error)
}
