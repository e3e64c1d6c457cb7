// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logger builds the process logger.
// Logs only ever go to stderr: stdout carries the protocol.
package logger

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger whose level follows level,
// so it can be changed after the configuration is loaded.
func New(name string, level zap.AtomicLevel) (ret *zap.SugaredLogger, err error) {
	defer Wrap(&err, "create logger")

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	// A sampled core would drop repeated debug lines
	// once the level is lowered at runtime.
	cfg.Sampling = nil
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	var logger *zap.Logger
	logger, err = cfg.Build()
	if err != nil {
		return
	}

	ret = logger.Named(name).Sugar()
	return
}

// ParseLevel is zapcore.ParseLevel wrapped into an AtomicLevel.
func ParseLevel(text string) (ret zap.AtomicLevel, err error) {
	defer Wrap(&err, "parse log level %q", text)

	var level zapcore.Level
	level, err = zapcore.ParseLevel(text)
	if err != nil {
		return
	}

	ret = zap.NewAtomicLevelAt(level)
	return
}
