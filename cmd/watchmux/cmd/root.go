// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/internal/logger"
	"github.com/black-desk/watchmux/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flags struct {
	CfgPath  string
	LogLevel string
}

var rootCmd = &cobra.Command{
	Use:   "watchmux",
	Short: "Multiplex filesystem watches over stdio",
	Long: `watchmux reads watch and unwatch commands as JSON lines on stdin
and writes responses and filesystem events as JSON lines on stdout.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf(
				"\n\n%w\n"+CheckDocumentString,
				err,
			)

			return
		}()

		err = rootCmdRun(cmd)
		return
	},
}

func loadConfig(log *zap.SugaredLogger) (ret *config.Config, err error) {
	defer Wrap(&err)

	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == defaultCfgPath() {
		log.Debugw("Configuration file missing, fallback to default config.",
			"file", flags.CfgPath,
		)

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		log.Errorw("Failed to read configuration from file",
			"file", flags.CfgPath,
			"error", err)

		return
	}

	return config.Load(content, log)
}

func rootCmdRun(cmd *cobra.Command) (err error) {
	level, err := logger.ParseLevel(flags.LogLevel)
	if err != nil {
		return
	}

	log, err := logger.New("watchmux", level)
	if err != nil {
		return
	}
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return
	}

	if !cmd.Flags().Changed("log-level") {
		level.SetLevel(cfg.Level())
	}

	s, err := injectedSupervisor(cfg, log, os.Stdin, os.Stdout)
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

		sig := <-sigCh
		cancel(&ErrCancelBySignal{Signal: sig})
	}()

	err = s.Run(ctx)
	if err == nil {
		return
	}

	log.Debugw(
		"Supervisor exited with error.",
		"error", err,
	)

	var cancelBySignal *ErrCancelBySignal
	if errors.As(err, &cancelBySignal) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		err = nil
		return
	}

	return
}

func defaultCfgPath() string {
	cfgPath := os.Getenv("CONFIGURATION_DIRECTORY")
	if cfgPath == "" {
		return WatchmuxCfgPath
	}

	return cfgPath + "/config.yaml"
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", defaultCfgPath(),
		"the configure file to use",
	)

	rootCmd.Flags().StringVar(
		&flags.LogLevel,
		"log-level", config.DefaultLogLevel,
		"log level (debug, info, warn, error), overrides the configuration",
	)
}
