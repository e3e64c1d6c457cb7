// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package debounce

import (
	"context"

	"github.com/black-desk/watchmux/pkg/types"
)

// Events returns the debounced stream.
// It is closed when Run returns.
func (d *Debouncer) Events() <-chan types.RawEvent {
	return d.out
}

// Push records a primitive notification. It never blocks.
func (d *Debouncer) Push(p Primitive) {
	d.log.Debugw("Primitive filesystem event.",
		"op", p.Op,
		"path", p.Path,
		"cookie", p.Cookie,
	)

	d.lock.Lock()
	defer d.lock.Unlock()

	now := d.clock.Now()

	switch p.Op {
	case OpCreate:
		d.create(now, p.Path)
	case OpWrite:
		d.write(now, p.Path)
	case OpRemove:
		d.remove(now, p.Path)
	case OpChmod:
		d.chmod(now, p.Path)
	case OpRenameFrom:
		d.renameFrom(now, p.Path, p.Cookie)
	case OpRenameTo:
		d.renameTo(now, p.Path, p.Cookie)
	case OpRescan:
		d.ready = append(d.ready, types.RawEvent{Type: types.RawEventTypeRescan})
	case OpError:
		d.ready = append(d.ready, types.RawEvent{
			Type: types.RawEventTypeError,
			Path: p.Path,
			Err:  p.Err,
		})
	default:
		d.log.Warnw("Unknown primitive filesystem event.",
			"op", p.Op,
			"path", p.Path,
		)
	}

	if d.delay == 0 {
		d.flush(now)
	}

	d.signal()
}

// Run delivers debounced events until ctx is done.
func (d *Debouncer) Run(ctx context.Context) (err error) {
	defer close(d.out)

	ticker := d.clock.Ticker(d.tick())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.lock.Lock()
			d.flush(d.clock.Now())
			d.lock.Unlock()
		case <-d.wake:
		}

		for {
			event, ok := d.pop()
			if !ok {
				break
			}

			select {
			case d.out <- event:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
