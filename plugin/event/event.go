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

// Event plugin records task launch and exit events to InfluxDB. Recording
// failures are logged only; they never block the task.
package main

import (
	"CraneEnvHook/api"
	"os"

	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var _ api.Plugin = &EventPlugin{}

var PluginInstance = EventPlugin{}

// Plugin internal config
type config struct {
	Database struct {
		Bucket      string `yaml:"Bucket"`
		Org         string `yaml:"Org"`
		Measurement string `yaml:"Measurement"`
		Token       string `yaml:"Token"`
		Url         string `yaml:"Url"`
	} `yaml:"Database"`
}

type EventPlugin struct {
	config
	client influxdb2.Client
}

func (p *EventPlugin) Name() string {
	return "Event"
}

func (p *EventPlugin) Version() string {
	return "v0.0.1"
}

func (p *EventPlugin) Load(meta api.PluginMeta) error {
	if meta.Config == "" {
		return fmt.Errorf("no config file specified")
	}

	content, err := os.ReadFile(meta.Config)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(content, &p.config); err != nil {
		return err
	}

	log.Infoln("Event plugin is initialized.")
	log.Tracef("Event plugin config: %v", p.config)

	return nil
}

func (p *EventPlugin) Unload(meta api.PluginMeta) error {
	log.Infoln("Event plugin is unloaded.")
	return nil
}

func (p *EventPlugin) TaskInitHook(ctx *api.PluginContext) {
	p.recordEvent(ctx, "task_init")
}

func (p *EventPlugin) TaskExitHook(ctx *api.PluginContext) {
	p.recordEvent(ctx, "task_exit")
}

func (p *EventPlugin) recordEvent(ctx *api.PluginContext, event string) {
	req := ctx.Request()
	if req == nil {
		log.Errorln("Invalid request, expected a task environment.")
		return
	}

	dbConfig := p.Database
	p.client = influxdb2.NewClientWithOptions(dbConfig.Url, dbConfig.Token,
		influxdb2.DefaultOptions().SetPrecision(time.Nanosecond))
	defer p.client.Close()

	influxdbCtx := context.Background()
	if pong, err := p.client.Ping(influxdbCtx); err != nil {
		log.Errorf("Failed to ping InfluxDB: %v", err)
		return
	} else if !pong {
		log.Error("Failed to ping InfluxDB: not pong")
		return
	}
	log.Tracef("InfluxDB client is created: %v", p.client.ServerURL())

	writer := p.client.WriteAPIBlocking(dbConfig.Org, dbConfig.Bucket)

	name := req.TaskName
	if name == "" {
		name = " "
	}
	tags := map[string]string{
		"event": event,
	}
	fields := map[string]any{
		"task_id":   int64(req.TaskId),
		"task_name": name,
		"env_size":  envSize(req),
	}

	point := influxdb2.NewPoint(dbConfig.Measurement, tags, fields, time.Now())

	if err := writer.WritePoint(influxdbCtx, point); err != nil {
		log.Errorf("Failed to write point to InfluxDB: %v", err)
		return
	}

	log.Tracef("Recorded event: %s, task_id: %d, task_name: %s", event, req.TaskId, name)
}

func envSize(req *api.TaskEnvRequest) int64 {
	if req.Env == nil {
		return 0
	}
	return int64(req.Env.Len())
}

func main() {
	log.Fatal("This is a plugin, should not be executed directly.\n" +
		"Please build it as a shared object (.so) and load it with the hook runner.")
}
