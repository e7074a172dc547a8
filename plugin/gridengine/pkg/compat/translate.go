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

package compat

import (
	"CraneEnvHook/api"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// The names on both sides are fixed vocabulary: job scripts written for
// GridEngine read the right-hand names verbatim, so neither side may be
// renamed or abbreviated.
type copyRule struct {
	src string
	dst string
}

var submitRules = []copyRule{
	{"SLURM_CLUSTER_NAME", "SGE_CLUSTER_NAME"},
	{"SLURM_SUBMIT_DIR", "SGE_O_WORKDIR"},
	{"SLURM_SUBMIT_HOST", "SGE_O_HOST"},
}

// Only meaningful when the job is an array task.
var arrayRules = []copyRule{
	{"SLURM_ARRAY_TASK_ID", "SGE_TASK_ID"},
	{"SLURM_ARRAY_TASK_MIN", "SGE_TASK_FIRST"},
	{"SLURM_ARRAY_TASK_MAX", "SGE_TASK_LAST"},
	{"SLURM_ARRAY_TASK_STEP", "SGE_TASK_STEPSIZE"},
}

var jobRules = []copyRule{
	{"SLURM_JOB_NAME", "JOB_NAME"},
	{"SLURM_JOB_PARTITION", "QUEUE"},
}

// Translate computes the GridEngine equivalents of the Slurm-style job
// environment and returns them as an ordered write list. The write list is
// a pure function of the lookup, so identical environments always produce
// identical writes. When not enabled, nothing is written.
func Translate(enabled bool, env api.EnvLookup) []api.EnvVar {
	if !enabled {
		return nil
	}

	var writes []api.EnvVar
	put := func(name string, value string) {
		writes = append(writes, api.EnvVar{Name: name, Value: value})
	}
	copyIfPresent := func(rules []copyRule) {
		for _, r := range rules {
			if v, ok := lookup(env, r.src); ok {
				put(r.dst, v)
			}
		}
	}

	copyIfPresent(submitRules)

	// An array task advertises the array master id as its JOB_ID; the
	// per-task variables only make sense in that case.
	if v, ok := lookup(env, "SLURM_ARRAY_JOB_ID"); ok {
		put("JOB_ID", v)
		copyIfPresent(arrayRules)
	} else if v, ok := lookup(env, "SLURM_JOB_ID"); ok {
		put("JOB_ID", v)
	}

	copyIfPresent(jobRules)

	put("NQUEUES", "1")

	if v, ok := lookup(env, "SLURM_JOB_NUM_NODES"); ok {
		put("NHOSTS", v)
	} else {
		put("NHOSTS", "1")
	}

	// No PE_HOSTFILE is written. Tightly integrated MPI implementations
	// probe for it and would mistake the job for a real GridEngine
	// allocation.

	nslots := "1"
	if v, ok := lookup(env, "SLURM_JOB_CPUS_PER_NODE"); ok {
		total, err := SumCpusPerNode(v)
		if err != nil {
			log.Warnf("gridengine: %v", err)
		} else {
			nslots = strconv.FormatUint(total, 10)
		}
	}
	put("NSLOTS", nslots)

	return writes
}

// Empty values are treated the same as absent ones throughout the mapping.
func lookup(env api.EnvLookup, name string) (string, bool) {
	v, ok := env(name)
	return v, ok && v != ""
}
