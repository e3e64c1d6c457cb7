// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package registry

import (
	"fmt"

	"github.com/black-desk/watchmux/pkg/types"
)

// Update runs fn while holding the registry lock.
func (r *Registry) Update(fn func(tx *Tx) error) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	return fn(&Tx{r: r})
}

// View runs fn while holding the registry lock.
// The slice is only valid during fn.
func (r *Registry) View(fn func(watches []types.Watch)) {
	r.lock.Lock()
	defer r.lock.Unlock()

	fn(r.watches)
}

func (r *Registry) Insert(id types.WatchID, root string) error {
	return r.Update(func(tx *Tx) error {
		return tx.Insert(id, root)
	})
}

func (r *Registry) Remove(id types.WatchID) (ret types.Watch, err error) {
	err = r.Update(func(tx *Tx) (err error) {
		ret, err = tx.Remove(id)
		return
	})
	return
}

// Snapshot returns a copy of the active watches in insertion order.
func (r *Registry) Snapshot() (ret []types.Watch) {
	r.View(func(watches []types.Watch) {
		ret = append([]types.Watch{}, watches...)
	})
	return
}

func (r *Registry) Len() (ret int) {
	r.View(func(watches []types.Watch) {
		ret = len(watches)
	})
	return
}

func (tx *Tx) Has(id types.WatchID) bool {
	_, ok := tx.r.index[id]
	return ok
}

func (tx *Tx) Lookup(id types.WatchID) (ret types.Watch, ok bool) {
	var i int
	i, ok = tx.r.index[id]
	if !ok {
		return
	}

	ret = tx.r.watches[i]
	return
}

func (tx *Tx) Insert(id types.WatchID, root string) error {
	if tx.Has(id) {
		return fmt.Errorf("insert %d: %w", id, ErrAlreadyExists)
	}

	tx.r.index[id] = len(tx.r.watches)
	tx.r.watches = append(tx.r.watches, types.Watch{ID: id, Root: root})
	return nil
}

func (tx *Tx) Remove(id types.WatchID) (ret types.Watch, err error) {
	i, ok := tx.r.index[id]
	if !ok {
		err = fmt.Errorf("remove %d: %w", id, ErrNotFound)
		return
	}

	ret = tx.r.watches[i]

	delete(tx.r.index, id)
	tx.r.watches = append(tx.r.watches[:i], tx.r.watches[i+1:]...)
	for j := i; j < len(tx.r.watches); j++ {
		tx.r.index[tx.r.watches[j].ID] = j
	}

	return
}

func (tx *Tx) Len() int {
	return len(tx.r.watches)
}
