/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package cenvhook

import (
	"CraneEnvHook/internal/util"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Show the hook plugins in the config file",
	Long:  "",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		if err := ParseHookConfig(FlagConfigPath); err != nil {
			log.Errorf("Failed to parse config %s: %v", FlagConfigPath, err)
			os.Exit(util.ErrorCmdArg)
		}

		table := tablewriter.NewWriter(os.Stdout)
		util.SetBorderlessTable(table)

		table.SetHeader([]string{"Name", "Path", "Config", "Args"})
		for _, p := range gHookConfig.Plugins {
			table.Append([]string{p.Name, p.Path, p.Config, strings.Join(p.Args, " ")})
		}
		table.Render()
	},
}
