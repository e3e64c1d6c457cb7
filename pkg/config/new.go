// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func Load(content []byte, log *zap.SugaredLogger) (ret *Config, err error) {
	defer Wrap(&err, "load configuration")

	cfg := &Config{}
	cfg.log = log
	if cfg.log == nil {
		cfg.log = zap.NewNop().Sugar()
	}

	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		Wrap(&err, "unmarshal configuration")
		return
	}

	err = cfg.check()
	if err != nil {
		return
	}

	ret = cfg

	cfg.log.Debugw("Configuration loaded.",
		"backend", cfg.Backend,
		"debounce", *cfg.Debounce,
		"log-level", cfg.LogLevel,
		"event-buffer", cfg.EventBuffer,
	)

	return
}

// Default returns the configuration used when no file is present.
func Default(log *zap.SugaredLogger) (*Config, error) {
	return Load([]byte(DefaultConfig), log)
}
