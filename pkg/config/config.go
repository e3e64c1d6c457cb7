// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config is the optional configuration file of watchmux.
// Every field has a default,
// so running without a configuration file is the same as
// loading DefaultConfig.
package config

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// Backend selects the library used to watch the filesystem.
	Backend Backend `yaml:"backend" validate:"omitempty,oneof=notify fsnotify"`
	// Debounce is how long events for a path are held back
	// to be coalesced. Zero disables coalescing.
	Debounce *time.Duration `yaml:"debounce"`
	LogLevel string         `yaml:"log-level" validate:"omitempty,oneof=debug info warn error"`
	// EventBuffer is the size of the channel
	// each watch root receives native events on.
	EventBuffer int `yaml:"event-buffer" validate:"omitempty,gte=1"`

	log *zap.SugaredLogger `yaml:"-"`
}

type Backend string

const (
	BackendNotify   Backend = "notify"
	BackendFsnotify Backend = "fsnotify"
)

// Level returns the zap level named by LogLevel.
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
