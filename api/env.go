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

package api

import "strings"

// EnvVar is a single (name, value) pair to be written into a task
// environment.
type EnvVar struct {
	Name  string
	Value string
}

// EnvLookup resolves a variable by name. The bool reports presence, so an
// empty value stays distinguishable from an absent one.
type EnvLookup func(name string) (string, bool)

// TaskEnv is the environment a launched task will observe. It keeps the
// insertion order of variables so a rewritten environment exports
// deterministically.
type TaskEnv struct {
	names  []string
	values map[string]string
}

func NewTaskEnv() *TaskEnv {
	return &TaskEnv{values: make(map[string]string)}
}

// TaskEnvFromEnviron builds a TaskEnv from os.Environ()-style "name=value"
// entries. Entries without '=' are skipped. On duplicated names the last
// occurrence wins, keeping the position of the first.
func TaskEnvFromEnviron(environ []string) *TaskEnv {
	e := NewTaskEnv()
	for _, kv := range environ {
		name, value, found := strings.Cut(kv, "=")
		if !found || name == "" {
			continue
		}
		e.Set(name, value)
	}
	return e
}

func (e *TaskEnv) Lookup(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Set creates or overwrites a variable. Overwriting keeps the variable's
// original position.
func (e *TaskEnv) Set(name string, value string) {
	if _, ok := e.values[name]; !ok {
		e.names = append(e.names, name)
	}
	e.values[name] = value
}

// Apply writes all vars into the environment, in order.
func (e *TaskEnv) Apply(vars []EnvVar) {
	for _, v := range vars {
		e.Set(v.Name, v.Value)
	}
}

func (e *TaskEnv) Len() int {
	return len(e.names)
}

// Environ exports the environment as "name=value" entries in insertion
// order, suitable for exec.
func (e *TaskEnv) Environ() []string {
	environ := make([]string, 0, len(e.names))
	for _, name := range e.names {
		environ = append(environ, name+"="+e.values[name])
	}
	return environ
}

// TaskEnvRequest is the request carried by task level hooks.
type TaskEnvRequest struct {
	TaskId    uint32
	TaskName  string
	ExtraAttr string

	Env *TaskEnv
}
