// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"

	"github.com/black-desk/watchmux/pkg/config"
	"github.com/black-desk/watchmux/pkg/debounce"
	"github.com/black-desk/watchmux/pkg/interfaces"
	"github.com/black-desk/watchmux/pkg/paths"
	"github.com/black-desk/watchmux/pkg/protocol"
	"github.com/black-desk/watchmux/pkg/registry"
	"github.com/black-desk/watchmux/pkg/supervisor"
	"github.com/black-desk/watchmux/pkg/watchman/fsnotifywatch"
	"github.com/black-desk/watchmux/pkg/watchman/notifywatch"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func provideDebouncer(
	cfg *config.Config, logger *zap.SugaredLogger,
) (
	*debounce.Debouncer, error,
) {
	return debounce.New(
		debounce.WithDelay(*cfg.Debounce),
		debounce.WithBuffer(cfg.EventBuffer),
		debounce.WithLogger(logger),
	)
}

func provideWatchHandle(
	cfg *config.Config,
	deb *debounce.Debouncer,
	logger *zap.SugaredLogger,
) (
	ret interfaces.WatchHandle, err error,
) {
	switch cfg.Backend {
	case config.BackendNotify:
		ret, err = notifywatch.New(
			notifywatch.WithDebouncer(deb),
			notifywatch.WithBuffer(cfg.EventBuffer),
			notifywatch.WithLogger(logger),
		)
	case config.BackendFsnotify:
		ret, err = fsnotifywatch.New(
			fsnotifywatch.WithDebouncer(deb),
			fsnotifywatch.WithLogger(logger),
		)
	default:
		err = fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	return
}

func provideEncoder(w io.Writer) (*protocol.Encoder, error) {
	return protocol.NewEncoder(w)
}

func provideEmitter(
	enc *protocol.Encoder, logger *zap.SugaredLogger,
) (
	interfaces.Emitter, error,
) {
	return protocol.NewEmitter(
		protocol.WithEncoder(enc),
		protocol.WithEmitterLogger(logger),
	)
}

func provideDecoder(
	r io.Reader, logger *zap.SugaredLogger,
) (
	interfaces.CommandDecoder, error,
) {
	return protocol.NewDecoder(
		protocol.WithReader(r),
		protocol.WithDecoderLogger(logger),
	)
}

func provideCanonicalizer() interfaces.Canonicalizer {
	return paths.OS{}
}

func provideSupervisor(
	handle interfaces.WatchHandle,
	emitter interfaces.Emitter,
	decoder interfaces.CommandDecoder,
	canon interfaces.Canonicalizer,
	reg *registry.Registry,
	logger *zap.SugaredLogger,
) (
	*supervisor.Supervisor, error,
) {
	return supervisor.New(
		supervisor.WithWatchHandle(handle),
		supervisor.WithEmitter(emitter),
		supervisor.WithDecoder(decoder),
		supervisor.WithCanonicalizer(canon),
		supervisor.WithRegistry(reg),
		supervisor.WithLogger(logger),
	)
}

var set = wire.NewSet(
	provideCanonicalizer,
	provideDebouncer,
	provideDecoder,
	provideEmitter,
	provideEncoder,
	provideSupervisor,
	provideWatchHandle,
	registry.New,
)
