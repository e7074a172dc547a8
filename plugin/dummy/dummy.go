// This is a dummy plugin for testing and demonstration purposes.
package main

import (
	"CraneEnvHook/api"

	log "github.com/sirupsen/logrus"
)

// Compile-time check to ensure DummyPlugin implements api.Plugin
var _ api.Plugin = &DummyPlugin{}

// The hook runner will call plugin's method thru this variable
var PluginInstance = DummyPlugin{}

type DummyPlugin struct{}

func (dp *DummyPlugin) Name() string {
	return "Dummy"
}

func (dp *DummyPlugin) Version() string {
	return "v0.0.1"
}

func (dp *DummyPlugin) Load(meta api.PluginMeta) error {
	log.Infof("Dummy plugin is loaded.")
	log.Tracef("Metadata: %v", meta)
	return nil
}

func (dp *DummyPlugin) Unload(meta api.PluginMeta) error {
	log.Infof("Dummy plugin is unloaded.")
	return nil
}

func (dp *DummyPlugin) TaskInitHook(ctx *api.PluginContext) {
	log.Infoln("TaskInitHook is called!")

	req := ctx.Request()
	if req == nil {
		log.Errorln("Invalid request, expected a task environment.")
		return
	}

	log.Tracef("Task #%d environment has %d variables.", req.TaskId, req.Env.Len())
}

func (dp *DummyPlugin) TaskExitHook(ctx *api.PluginContext) {
	log.Infoln("TaskExitHook is called!")
}

func main() {
	log.Fatal("This is a plugin, should not be executed directly.\n" +
		"Please build it as a shared object (.so) and load it with the hook runner.")
}
