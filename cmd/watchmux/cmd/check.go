// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkFlags struct {
	EnableLogger bool
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check watchmux setup",
	Long:  `Check configuration without serving any watch.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+CheckDocumentString, err)

			return
		}()

		err = checkConfigCmdRun()
		return
	},
}

func init() {
	checkCmd.PersistentFlags().BoolVarP(
		&checkFlags.EnableLogger,
		"verbose", "v", false,
		"print logs of the checks to stderr",
	)

	rootCmd.AddCommand(checkCmd)
}
