// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

const (
	CheckDocumentString = `
Go to check
1. documentation https://pkg.go.dev/github.com/black-desk/watchmux/cmd/watchmux
2. wiki https://github.com/black-desk/watchmux/wiki
for some help.
`
	WatchmuxCfgPath = "/etc/watchmux/config.yaml"
)
