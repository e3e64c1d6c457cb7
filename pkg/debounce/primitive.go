// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package debounce

type Op uint8

const (
	OpCreate     Op = iota // Create
	OpWrite                // Write
	OpRemove               // Remove
	OpChmod                // Chmod
	OpRenameFrom           // RenameFrom
	OpRenameTo             // RenameTo
	OpRescan               // Rescan
	OpError                // Error
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -linecomment

// Primitive is a single, undebounced notification from a watch backend.
type Primitive struct {
	Op   Op
	Path string
	// Cookie pairs an OpRenameFrom with its OpRenameTo.
	// Zero means the backend cannot pair renames.
	Cookie uint32
	Err    error
}
