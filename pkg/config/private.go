// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	if c.Backend == "" {
		c.Backend = DefaultBackend
	}

	if c.Debounce == nil {
		debounce := DefaultDebounce
		c.Debounce = &debounce
	} else if *c.Debounce < 0 {
		err = ErrNegativeDebounce
		return
	} else if *c.Debounce == 0 {
		c.log.Warnw("Debounce disabled, every primitive event is reported.")
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	if c.EventBuffer == 0 {
		c.EventBuffer = DefaultEventBuffer
	}

	return
}
