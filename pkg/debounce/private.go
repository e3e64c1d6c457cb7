// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package debounce

import (
	"sort"
	"time"

	"github.com/black-desk/watchmux/pkg/types"
)

func (d *Debouncer) tick() time.Duration {
	t := d.delay / 4
	if t < minTick {
		t = minTick
	}
	return t
}

func (d *Debouncer) pairWindow() time.Duration {
	if d.delay < minPairWindow {
		return minPairWindow
	}
	return d.delay
}

func (d *Debouncer) signal() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Debouncer) pop() (ret types.RawEvent, ok bool) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if len(d.ready) == 0 {
		return
	}

	ret, ok = d.ready[0], true
	d.ready[0] = types.RawEvent{}
	d.ready = d.ready[1:]
	return
}

// set records event as the pending state of path and restarts its window.
// A path keeps its original position in the output order.
func (d *Debouncer) set(now time.Time, path string, event types.RawEvent) {
	e, ok := d.pending[path]
	if !ok {
		d.seq++
		e = &entry{seq: d.seq}
		d.pending[path] = e
	}

	e.event = event
	e.deadline = now.Add(d.delay)
}

func (d *Debouncer) refresh(now time.Time, path string) {
	d.pending[path].deadline = now.Add(d.delay)
}

func (d *Debouncer) create(now time.Time, path string) {
	e, ok := d.pending[path]
	if !ok {
		d.set(now, path, types.RawEvent{Type: types.RawEventTypeCreate, Path: path})
		return
	}

	switch e.event.Type {
	case types.RawEventTypeRemove:
		// Replaced in place.
		d.set(now, path, types.RawEvent{Type: types.RawEventTypeWrite, Path: path})
	case types.RawEventTypeChmod:
		d.set(now, path, types.RawEvent{Type: types.RawEventTypeCreate, Path: path})
	default:
		d.refresh(now, path)
	}
}

func (d *Debouncer) write(now time.Time, path string) {
	e, ok := d.pending[path]
	if !ok {
		d.ready = append(d.ready, types.RawEvent{
			Type: types.RawEventTypeNoticeWrite,
			Path: path,
		})
		d.set(now, path, types.RawEvent{Type: types.RawEventTypeWrite, Path: path})
		return
	}

	switch e.event.Type {
	case types.RawEventTypeChmod, types.RawEventTypeRemove:
		d.set(now, path, types.RawEvent{Type: types.RawEventTypeWrite, Path: path})
	default:
		d.refresh(now, path)
	}
}

func (d *Debouncer) chmod(now time.Time, path string) {
	if _, ok := d.pending[path]; !ok {
		d.set(now, path, types.RawEvent{Type: types.RawEventTypeChmod, Path: path})
		return
	}

	d.refresh(now, path)
}

func (d *Debouncer) remove(now time.Time, path string) {
	e, ok := d.pending[path]
	if !ok {
		d.ready = append(d.ready, types.RawEvent{
			Type: types.RawEventTypeNoticeRemove,
			Path: path,
		})
		d.set(now, path, types.RawEvent{Type: types.RawEventTypeRemove, Path: path})
		return
	}

	switch e.event.Type {
	case types.RawEventTypeCreate:
		// Never observable from outside.
		delete(d.pending, path)
	case types.RawEventTypeRename:
		delete(d.pending, path)
		d.set(now, e.event.OldPath, types.RawEvent{
			Type: types.RawEventTypeRemove,
			Path: e.event.OldPath,
		})
	default:
		d.set(now, path, types.RawEvent{Type: types.RawEventTypeRemove, Path: path})
	}
}

func (d *Debouncer) renameFrom(now time.Time, path string, cookie uint32) {
	if cookie == 0 {
		d.remove(now, path)
		return
	}

	if m, ok := d.arrivals[cookie]; ok {
		delete(d.arrivals, cookie)
		d.rename(now, path, m.path)
		return
	}

	d.moves[cookie] = &move{
		path:     path,
		deadline: now.Add(d.pairWindow()),
	}
}

// renameTo waits for the source of a rename.
// The two halves can arrive in either order.
func (d *Debouncer) renameTo(now time.Time, path string, cookie uint32) {
	if cookie == 0 {
		d.create(now, path)
		return
	}

	if m, ok := d.moves[cookie]; ok {
		delete(d.moves, cookie)
		d.rename(now, m.path, path)
		return
	}

	d.arrivals[cookie] = &move{
		path:     path,
		deadline: now.Add(d.pairWindow()),
	}
}

func (d *Debouncer) rename(now time.Time, from, to string) {
	if from == to {
		return
	}

	e, ok := d.pending[from]
	delete(d.pending, from)

	if !ok {
		d.set(now, to, types.RawEvent{
			Type:    types.RawEventTypeRename,
			Path:    to,
			OldPath: from,
		})
		return
	}

	switch e.event.Type {
	case types.RawEventTypeCreate:
		d.set(now, to, types.RawEvent{Type: types.RawEventTypeCreate, Path: to})
	case types.RawEventTypeRename:
		if e.event.OldPath == to {
			d.set(now, to, types.RawEvent{Type: types.RawEventTypeWrite, Path: to})
			return
		}

		d.set(now, to, types.RawEvent{
			Type:    types.RawEventTypeRename,
			Path:    to,
			OldPath: e.event.OldPath,
		})
	default:
		d.set(now, to, types.RawEvent{
			Type:    types.RawEventTypeRename,
			Path:    to,
			OldPath: from,
		})
	}
}

// flush moves everything whose window has closed to the ready queue.
func (d *Debouncer) flush(now time.Time) {
	for cookie, m := range d.moves {
		if now.Before(m.deadline) {
			continue
		}

		delete(d.moves, cookie)

		// Moved out to somewhere nobody watches.
		if _, ok := d.pending[m.path]; ok {
			d.remove(now, m.path)
			continue
		}

		d.set(now, m.path, types.RawEvent{Type: types.RawEventTypeRemove, Path: m.path})
	}

	for cookie, m := range d.arrivals {
		if now.Before(m.deadline) {
			continue
		}

		delete(d.arrivals, cookie)

		// Moved in from somewhere nobody watches.
		d.create(now, m.path)
	}

	var expired []*entry
	for path, e := range d.pending {
		if now.Before(e.deadline) {
			continue
		}

		delete(d.pending, path)
		expired = append(expired, e)
	}

	sort.Slice(expired, func(i, j int) bool {
		return expired[i].seq < expired[j].seq
	})

	for i := range expired {
		d.ready = append(d.ready, expired[i].event)
	}
}
