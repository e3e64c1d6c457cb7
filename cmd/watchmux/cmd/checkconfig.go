// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"os"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/watchmux/internal/logger"
	"github.com/black-desk/watchmux/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// checkConfigCmd represents the config command
var checkConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Check configuration",
	Long:  `Validate configuration.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n%w\n"+CheckDocumentString, err)

			return
		}()

		err = checkConfigCmdRun()
		return
	},
}

func checkConfigCmdRun() (err error) {
	defer Wrap(&err)

	log := zap.NewNop().Sugar()
	if checkFlags.EnableLogger {
		log, err = logger.New("watchmux", zap.NewAtomicLevelAt(zapcore.DebugLevel))
		if err != nil {
			return
		}
	}

	var content []byte
	content, err = os.ReadFile(flags.CfgPath)
	if err != nil {
		Wrap(
			&err,
			"read configuration from %s",
			flags.CfgPath,
		)
		return
	}

	_, err = config.Load(content, log)
	if err != nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Configuration %s is valid.\n", flags.CfgPath)

	return
}

func init() {
	checkCmd.AddCommand(checkConfigCmd)
}
