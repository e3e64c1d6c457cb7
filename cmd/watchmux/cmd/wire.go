// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build wireinject
// +build wireinject

package cmd

import (
	"io"

	"github.com/black-desk/watchmux/pkg/config"
	"github.com/black-desk/watchmux/pkg/supervisor"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func injectedSupervisor(
	*config.Config, *zap.SugaredLogger, io.Reader, io.Writer,
) (
	*supervisor.Supervisor, error,
) {
	panic(wire.Build(set))
}
