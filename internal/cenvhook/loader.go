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
	"fmt"
	"os"
	"plugin"

	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v3"
)

type HookConfig struct {
	Enabled  bool             `yaml:"Enabled"`
	LogLevel string           `yaml:"EnvHookDebugLevel"`
	LogPath  string           `yaml:"EnvHookLogPath"`
	Plugins  []api.PluginMeta `yaml:"Plugins"`
}

type PluginLoaded struct {
	api.Plugin

	Meta api.PluginMeta
}

var (
	gHookConfig HookConfig
	// Hook chains run in config order, so this is a slice, not a map.
	gPlugins []*PluginLoaded
)

func ParseHookConfig(path string) error {
	config, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	temp := struct {
		EnvHook HookConfig `yaml:"EnvHook"`
	}{}
	if err = yaml.Unmarshal(config, &temp); err != nil {
		return err
	}

	gHookConfig = temp.EnvHook
	if gHookConfig.LogLevel == "" {
		gHookConfig.LogLevel = "info"
	}

	return nil
}

func LoadPluginsByConfig(pl []api.PluginMeta) error {
	gPlugins = make([]*PluginLoaded, 0, len(pl))

	for _, p := range pl {
		log.Infof("Loading plugin %s from %s", p.Name, p.Path)

		// Load by path
		plg, err := plugin.Open(p.Path)
		if err != nil {
			log.Warn(err)
			continue
		}

		// Search for variable
		v, err := plg.Lookup("PluginInstance")
		if err != nil {
			return err
		}

		castV, ok := v.(api.Plugin)
		if !ok {
			return fmt.Errorf("failed to cast plugin instance %v", p.Name)
		}

		gPlugins = append(gPlugins, &PluginLoaded{
			Plugin: castV,
			Meta:   p,
		})
	}

	return nil
}

func InitPlugins() error {
	for _, p := range gPlugins {
		if err := p.Load(p.Meta); err != nil {
			return fmt.Errorf("failed to load plugin %s: %w", p.Meta.Name, err)
		}
	}
	return nil
}

func UnloadPlugins() {
	for _, p := range gPlugins {
		if err := p.Unload(p.Meta); err != nil {
			log.Warnf("Failed to unload plugin %s: %v", p.Meta.Name, err)
		}
	}
}
