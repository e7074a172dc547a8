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
	"CraneEnvHook/api"
	"CraneEnvHook/internal/util"
	"context"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"
	"golang.org/x/sys/unix"
)

var FlagTaskInfo string

/*
Plugins may contribute their own command line options, but which plugins to
load is only known after the config is read. So flags are parsed twice:
first leniently for the runner's own flags (to find the config), then
strictly with the plugin contributed options merged in.
*/

var runCmd = &cobra.Command{
	Use:                "run [flags] -- TASK_COMMAND [ARG...]",
	Short:              "Rewrite the task environment through hook plugins, then exec the task",
	Long:               "",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		hookArgs, argv := splitArgs(args)
		if len(argv) == 0 {
			log.Errorf("No task command given, expected `cenvhook run [flags] -- TASK_COMMAND [ARG...]`")
			os.Exit(util.ErrorCmdArg)
		}

		env := setupAndDispatch(hookArgs, api.TaskInitHook)
		execTask(argv, env.Environ())
	},
}

var exitCmd = &cobra.Command{
	Use:                "exit [flags]",
	Short:              "Run task exit hooks after a task has finished",
	Long:               "",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		hookArgs, argv := splitArgs(args)
		if len(argv) != 0 {
			log.Errorf("exit does not take a task command")
			os.Exit(util.ErrorCmdArg)
		}

		setupAndDispatch(hookArgs, api.TaskExitHook)
	},
}

func splitArgs(args []string) (hookArgs []string, argv []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func baseFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&FlagConfigPath, "config", "c", util.DefaultConfigPath, "Path to config file")
	fs.StringVar(&FlagDebugLevel, "debug-level", "", "Available debug level (trace, debug, info)")
	fs.StringVar(&FlagTaskInfo, "task-info", "", "Task metadata JSON passed by the scheduler")
	return fs
}

// setupAndDispatch loads config and plugins, runs the hook chain over the
// snapshotted process environment and returns the resulting environment.
// Hook failures are the plugins' business; nothing here may block the task
// launch once the configuration itself is sound.
func setupAndDispatch(hookArgs []string, hook api.HookType) *api.TaskEnv {
	preFs := baseFlagSet("cenvhook-pre")
	preFs.ParseErrorsWhitelist.UnknownFlags = true
	if err := preFs.Parse(hookArgs); err != nil {
		log.Error(err)
		os.Exit(util.ErrorCmdArg)
	}

	if err := ParseHookConfig(FlagConfigPath); err != nil {
		log.Errorf("Failed to parse config %s: %v", FlagConfigPath, err)
		os.Exit(util.ErrorCmdArg)
	}

	level := gHookConfig.LogLevel
	if FlagDebugLevel != "" {
		level = FlagDebugLevel
	}
	if err := util.InitLogger(level, gHookConfig.LogPath); err != nil {
		log.Error(err)
		os.Exit(util.ErrorCmdArg)
	}

	env := api.TaskEnvFromEnviron(os.Environ())

	if !gHookConfig.Enabled {
		log.Debug("Environment hooks are disabled in config.")
		return env
	}

	if err := LoadPluginsByConfig(gHookConfig.Plugins); err != nil {
		log.Errorf("Failed to load plugins: %v", err)
		os.Exit(util.ErrorPluginLoad)
	}

	fs := baseFlagSet("cenvhook")
	for _, p := range gPlugins {
		if provider, ok := p.Plugin.(api.OptionProvider); ok {
			provider.RegisterOptions(fs)
		}
	}
	if err := fs.Parse(hookArgs); err != nil {
		log.Error(err)
		os.Exit(util.ErrorCmdArg)
	}

	if err := InitPlugins(); err != nil {
		log.Errorf("Failed to init plugins: %v", err)
		os.Exit(util.ErrorPluginLoad)
	}

	req := &api.TaskEnvRequest{Env: env}
	parseTaskInfo(FlagTaskInfo, req)

	hs := make([]api.PluginHandler, 0, len(gPlugins))
	for _, p := range gPlugins {
		switch hook {
		case api.TaskInitHook:
			hs = append(hs, p.TaskInitHook)
		case api.TaskExitHook:
			hs = append(hs, p.TaskExitHook)
		}
	}

	c := api.NewContext(context.Background(), req, hook, &hs)
	c.Start()

	UnloadPlugins()

	return env
}

// parseTaskInfo fills the task identity from the scheduler supplied JSON
// blob. Missing or invalid metadata only costs the identity fields.
func parseTaskInfo(info string, req *api.TaskEnvRequest) {
	if info == "" {
		return
	}
	if !gjson.Valid(info) {
		log.Warnf("Invalid task info JSON, ignoring: %s", info)
		return
	}

	req.TaskId = uint32(gjson.Get(info, "task_id").Uint())
	req.TaskName = gjson.Get(info, "name").String()
	req.ExtraAttr = gjson.Get(info, "extra_attr").String()
}

func execTask(argv []string, environ []string) {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		log.Errorf("Failed to locate task command: %v", err)
		os.Exit(util.ErrorExecuteFailed)
	}

	if err := unix.Exec(path, argv, environ); err != nil {
		log.Errorf("Failed to exec task command: %v", err)
		os.Exit(util.ErrorExecuteFailed)
	}
}
