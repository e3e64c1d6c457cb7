// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

// WatchID is the identifier a client picks for a watch.
// It is only unique among currently active watches.
type WatchID int64

// Watch is one active subscription.
type Watch struct {
	ID WatchID
	// Root is the canonical absolute path of the watched subtree.
	Root string
}
