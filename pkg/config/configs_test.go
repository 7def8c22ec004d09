package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"Heartbeat/pkg/heartbeat"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.Unit != heartbeat.MB {
		t.Errorf("Unit = %q; want MB", c.Unit)
	}
	if c.Output != "-" || c.Failure != "" {
		t.Errorf("Output, Failure = %q, %q; want -, empty", c.Output, c.Failure)
	}
	if c.Interval != 10*time.Second || c.Count != 0 {
		t.Errorf("Interval, Count = %v, %d; want 10s, 0", c.Interval, c.Count)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadYAMLKeepsToggleOrder(t *testing.T) {
	doc := `
storage_unit: GB
toggles:
  zThreads: YES
  aCpu: NO
  mHeap:
  FooMemoryBar: YES
output: out/hb.jsonl
failure: out/failed.jsonl
interval: 250ms
count: 3
log_level: debug
log_format: console
`
	c := New()
	if err := c.LoadYAML([]byte(doc)); err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}

	want := []heartbeat.Toggle{
		{Name: "zThreads", Value: "YES"},
		{Name: "aCpu", Value: "NO"},
		{Name: "mHeap", Value: "YES"},
		{Name: "FooMemoryBar", Value: "YES"},
	}
	if !reflect.DeepEqual(c.Toggles, want) {
		t.Errorf("Toggles = %v; want %v", c.Toggles, want)
	}
	if c.Unit != heartbeat.GB {
		t.Errorf("Unit = %q; want GB", c.Unit)
	}
	if c.Output != "out/hb.jsonl" || c.Failure != "out/failed.jsonl" {
		t.Errorf("Output, Failure = %q, %q", c.Output, c.Failure)
	}
	if c.Interval != 250*time.Millisecond || c.Count != 3 {
		t.Errorf("Interval, Count = %v, %d; want 250ms, 3", c.Interval, c.Count)
	}
	if c.LogLevel != "debug" || c.LogFormat != "console" {
		t.Errorf("LogLevel, LogFormat = %q, %q", c.LogLevel, c.LogFormat)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"toggles as list":   "toggles: [cpu, heap]\n",
		"toggles as scalar": "toggles: cpu\n",
		"nested toggle":     "toggles:\n  cpu: {a: b}\n",
		"bad interval":      "interval: soon\n",
		"not yaml":          "toggles: [\n",
	}
	for name, doc := range tests {
		if err := New().LoadYAML([]byte(doc)); err == nil {
			t.Errorf("%s: LoadYAML succeeded; want error", name)
		}
	}

	if err := New().LoadYAML([]byte("toggles:\n")); err != nil {
		t.Errorf("empty toggles: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat.yaml")
	if err := os.WriteFile(path, []byte("storage_unit: KB\ntoggles:\n  cpu: YES\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c := New()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Unit != heartbeat.KB || len(c.Toggles) != 1 {
		t.Errorf("LoadFile = %+v", c)
	}
	if err := New().LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("LoadFile on missing file succeeded")
	}
}

func TestApplyEnv(t *testing.T) {
	c := New()
	c.Toggles = []heartbeat.Toggle{{Name: "cpu", Value: "YES"}}
	err := c.ApplyEnv(envMap(map[string]string{
		EnvUnit:    "KB",
		EnvOutput:  "hb.json",
		EnvToggles: "cpu=NO, heap ,threads=YES",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	want := []heartbeat.Toggle{
		{Name: "cpu", Value: "NO"},
		{Name: "heap", Value: "YES"},
		{Name: "threads", Value: "YES"},
	}
	if !reflect.DeepEqual(c.Toggles, want) {
		t.Errorf("Toggles = %v; want %v", c.Toggles, want)
	}
	if c.Unit != heartbeat.KB || c.Output != "hb.json" {
		t.Errorf("Unit, Output = %q, %q", c.Unit, c.Output)
	}

	if err := New().ApplyEnv(envMap(map[string]string{EnvToggles: "cpu=maybe"})); !errors.Is(err, heartbeat.ErrInvalidToggle) {
		t.Errorf("ApplyEnv bad toggle error = %v; want %v", err, heartbeat.ErrInvalidToggle)
	}
}

func TestParseToggle(t *testing.T) {
	tests := []struct {
		in   string
		want heartbeat.Toggle
		ok   bool
	}{
		{"cpu", heartbeat.Toggle{Name: "cpu", Value: "YES"}, true},
		{"cpu=", heartbeat.Toggle{Name: "cpu", Value: "YES"}, true},
		{"cpu=NO", heartbeat.Toggle{Name: "cpu", Value: "NO"}, true},
		{" heap = YES ", heartbeat.Toggle{Name: "heap", Value: "YES"}, true},
		{"=YES", heartbeat.Toggle{}, false},
		{"cpu=no", heartbeat.Toggle{}, false},
	}
	for _, tt := range tests {
		got, err := ParseToggle(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseToggle(%q) error = %v; want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseToggle(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"unit":         func(c *Config) { c.Unit = "TB" },
		"toggle value": func(c *Config) { c.Toggles = []heartbeat.Toggle{{Name: "cpu", Value: "yes"}} },
		"toggle name":  func(c *Config) { c.Toggles = []heartbeat.Toggle{{Name: "", Value: "YES"}} },
		"duplicate": func(c *Config) {
			c.Toggles = []heartbeat.Toggle{{Name: "cpu", Value: "YES"}, {Name: "cpu", Value: "NO"}}
		},
		"interval":   func(c *Config) { c.Interval = -time.Second },
		"count":      func(c *Config) { c.Count = -1 },
		"log level":  func(c *Config) { c.LogLevel = "loud" },
		"log format": func(c *Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range tests {
		c := New()
		mutate(c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate error = %v; want %v", name, err, ErrInvalidConfig)
		}
	}
}

func newFlagCmd(f *Flags) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	f.AddProcessorFlags(cmd)
	f.AddOutputFlags(cmd)
	f.AddScheduleFlags(cmd)
	f.AddLogFlags(cmd)
	return cmd
}

func TestFlagsLoadPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat.yaml")
	doc := "storage_unit: KB\noutput: file.json\ntoggles:\n  cpu: YES\n  heap: YES\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	f := &Flags{}
	cmd := newFlagCmd(f)
	cmd.SetArgs([]string{"--config", path, "--unit", "GB", "-t", "heap=NO", "-t", "threads", "--count", "2"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	c, err := f.Load(cmd, envMap(map[string]string{EnvOutput: "env.jsonl", EnvUnit: "MB"}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Unit != heartbeat.GB {
		t.Errorf("Unit = %q; want GB from flag", c.Unit)
	}
	if c.Output != "env.jsonl" {
		t.Errorf("Output = %q; want env.jsonl from env", c.Output)
	}
	if c.Count != 2 || c.Interval != DefaultInterval {
		t.Errorf("Count, Interval = %d, %v; want 2, %v", c.Count, c.Interval, DefaultInterval)
	}
	want := []heartbeat.Toggle{
		{Name: "cpu", Value: "YES"},
		{Name: "heap", Value: "NO"},
		{Name: "threads", Value: "YES"},
	}
	if !reflect.DeepEqual(c.Toggles, want) {
		t.Errorf("Toggles = %v; want %v", c.Toggles, want)
	}
}

func TestFlagsLoadRejectsInvalid(t *testing.T) {
	f := &Flags{}
	cmd := newFlagCmd(f)
	cmd.SetArgs([]string{"--unit", "TB"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Load(cmd, envMap(nil)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load error = %v; want %v", err, ErrInvalidConfig)
	}
}
