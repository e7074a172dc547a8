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

// GridEngine compatibility plugin. When enabled, it maps the Slurm-style
// job environment of a launching task to the GridEngine equivalents
// (SGE_O_WORKDIR, JOB_ID, NSLOTS, ...) so that job scripts written for
// GridEngine keep working unmodified.
package main

import (
	"CraneEnvHook/api"
	"CraneEnvHook/plugin/gridengine/pkg/compat"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Compile-time checks to ensure GridEnginePlugin implements the plugin
// contract and contributes command line options.
var _ api.Plugin = &GridEnginePlugin{}
var _ api.OptionProvider = &GridEnginePlugin{}

// The hook runner will call plugin's method thru this variable
var PluginInstance = GridEnginePlugin{}

type GridEnginePlugin struct {
	// Resolved once in Load, read-only afterwards.
	enabled bool

	flagAddSgeEnv bool
}

func (p *GridEnginePlugin) Name() string {
	return "GridEngine"
}

func (p *GridEnginePlugin) Version() string {
	return "v0.1.0"
}

func (p *GridEnginePlugin) RegisterOptions(fs *pflag.FlagSet) {
	fs.BoolVar(&p.flagAddSgeEnv, "add-sge-env", false,
		"Add GridEngine equivalents of Slurm job environment variables.")
}

// Load resolves whether the translation is enabled, in increasing
// precedence: config file, enable= plugin arguments, --add-sge-env on the
// run command line. Bad arguments are reported and skipped; they never
// fail the load.
func (p *GridEnginePlugin) Load(meta api.PluginMeta) error {
	cfg, err := compat.LoadConfig(meta.Config)
	if err != nil {
		return err
	}
	p.enabled = cfg.Enabled

	for _, raw := range meta.Args {
		arg, err := compat.ParseArg(raw)
		if err != nil || arg.Key != "enable" {
			log.Errorf("gridengine: Invalid option: %s", raw)
			continue
		}
		v, err := compat.ParseBool(arg.Value)
		if err != nil {
			log.Errorf("gridengine: Ignoring invalid enable option: %s", raw)
			continue
		}
		p.enabled = v
	}

	if p.flagAddSgeEnv {
		p.enabled = true
	}

	if p.enabled {
		log.Infoln("gridengine: will add SGE-style environment variables to tasks.")
	}
	log.Tracef("gridengine: loaded with metadata: %v", meta)

	return nil
}

func (p *GridEnginePlugin) Unload(meta api.PluginMeta) error {
	log.Infoln("GridEngine plugin is unloaded.")
	return nil
}

func (p *GridEnginePlugin) TaskInitHook(ctx *api.PluginContext) {
	req := ctx.Request()
	if req == nil || req.Env == nil {
		log.Errorln("Invalid request, expected a task environment.")
		return
	}

	writes := compat.Translate(p.enabled, req.Env.Lookup)
	req.Env.Apply(writes)

	log.Tracef("gridengine: wrote %d variables for task #%d", len(writes), req.TaskId)
}

func (p *GridEnginePlugin) TaskExitHook(ctx *api.PluginContext) {
	// The translation leaves nothing behind to clean up.
}

func main() {
	log.Fatal("This is a plugin, should not be executed directly.\n" +
		"Please build it as a shared object (.so) and load it with the hook runner.")
}
