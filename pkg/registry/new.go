// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package registry keeps the set of active watches.
//
// Every access goes through one lock.
// Callers that must keep other state in lockstep with the registry
// (the OS subscription set, for example)
// do so inside Update.
package registry

import (
	"sync"

	"github.com/black-desk/watchmux/pkg/types"
)

type Registry struct {
	lock sync.Mutex

	// watches is kept in insertion order.
	watches []types.Watch
	index   map[types.WatchID]int
}

func New() *Registry {
	return &Registry{
		index: map[types.WatchID]int{},
	}
}

// Tx is the view of the registry handed to an Update callback.
// It must not be retained after the callback returns.
type Tx struct {
	r *Registry
}
