package api

import (
	"context"
	"reflect"
	"testing"
)

func TestTaskEnvFromEnviron(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    []string
	}{
		{
			name:    "keeps insertion order",
			environ: []string{"PATH=/bin", "HOME=/home/u", "SHELL=/bin/sh"},
			want:    []string{"PATH=/bin", "HOME=/home/u", "SHELL=/bin/sh"},
		},
		{
			name:    "skips malformed entries",
			environ: []string{"PATH=/bin", "broken", "=novalue", "HOME=/home/u"},
			want:    []string{"PATH=/bin", "HOME=/home/u"},
		},
		{
			name:    "last duplicate wins at first position",
			environ: []string{"FOO=a", "BAR=b", "FOO=c"},
			want:    []string{"FOO=c", "BAR=b"},
		},
		{
			name:    "value may contain equals sign",
			environ: []string{"EXPR=a=b"},
			want:    []string{"EXPR=a=b"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := TaskEnvFromEnviron(tt.environ).Environ()
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Environ() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskEnvLookup(t *testing.T) {
	env := TaskEnvFromEnviron([]string{"PRESENT=x", "EMPTY="})

	if v, ok := env.Lookup("PRESENT"); !ok || v != "x" {
		t.Fatalf(`Lookup("PRESENT") = (%q, %v), want ("x", true)`, v, ok)
	}
	if v, ok := env.Lookup("EMPTY"); !ok || v != "" {
		t.Fatalf(`Lookup("EMPTY") = (%q, %v), want ("", true)`, v, ok)
	}
	if _, ok := env.Lookup("ABSENT"); ok {
		t.Fatalf(`Lookup("ABSENT") reported present`)
	}
}

func TestTaskEnvApply(t *testing.T) {
	env := TaskEnvFromEnviron([]string{"PATH=/bin", "JOB_ID=old"})
	env.Apply([]EnvVar{
		{Name: "JOB_ID", Value: "42"},
		{Name: "QUEUE", Value: "normal"},
	})

	want := []string{"PATH=/bin", "JOB_ID=42", "QUEUE=normal"}
	if got := env.Environ(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Environ() = %v, want %v", got, want)
	}
	if env.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", env.Len())
	}
}

func TestContextChain(t *testing.T) {
	order := []string{}
	hs := []PluginHandler{
		func(c *PluginContext) { order = append(order, "first") },
		func(c *PluginContext) { order = append(order, "second"); c.Abort() },
		func(c *PluginContext) { order = append(order, "third") },
	}

	c := NewContext(context.Background(),&TaskEnvRequest{Env: NewTaskEnv()}, TaskInitHook, &hs)
	c.Start()

	want := []string{"first", "second"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("handler order = %v, want %v", order, want)
	}
}
