package config

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"Heartbeat/pkg/heartbeat"
)

// Flags holds command-line values until they are merged into a Config.
type Flags struct {
	ConfigPath string
	Unit       string
	Toggles    []string
	Output     string
	Failure    string
	Interval   time.Duration
	Count      int
	LogLevel   string
	LogFormat  string
	Fake       bool
}

// AddProcessorFlags adds the unit and toggle flags to a command.
func (f *Flags) AddProcessorFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.ConfigPath, "config", "c", "", "YAML config file (env "+EnvConfig+")")
	flags.StringVarP(&f.Unit, "unit", "u", string(DefaultUnit), "Storage unit for byte metrics (KB, MB, GB)")
	flags.StringArrayVarP(&f.Toggles, "toggle", "t", nil, "Metric toggle name[=YES|NO], repeatable")
	flags.BoolVar(&f.Fake, "fake", false, "Use fixed demo values instead of host metrics")
}

// AddOutputFlags adds the destination flags to a command.
func (f *Flags) AddOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.Output, "output", "o", DefaultOutput, "SUCCESS destination (-, stderr, discard, file:<path>, *.json, *.jsonl)")
	flags.StringVar(&f.Failure, "failure", "", "FAILURE destination (empty: log only)")
}

// AddScheduleFlags adds the interval and count flags to a command.
func (f *Flags) AddScheduleFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.DurationVarP(&f.Interval, "interval", "i", DefaultInterval, "Time between invocations")
	flags.IntVarP(&f.Count, "count", "n", DefaultCount, "Number of invocations (0 runs until interrupted)")
}

// AddLogFlags adds logging flags to a command.
func (f *Flags) AddLogFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&f.LogFormat, "log-format", DefaultLogFormat, "Log format (json, console)")
}

// Apply copies every flag the user set on fs into c.
func (f *Flags) Apply(fs *pflag.FlagSet, c *Config) error {
	changed := func(name string) bool {
		fl := fs.Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("unit") {
		c.Unit = heartbeat.Unit(f.Unit)
	}
	if changed("output") {
		c.Output = f.Output
	}
	if changed("failure") {
		c.Failure = f.Failure
	}
	if changed("interval") {
		c.Interval = f.Interval
	}
	if changed("count") {
		c.Count = f.Count
	}
	if changed("log-level") {
		c.LogLevel = f.LogLevel
	}
	if changed("log-format") {
		c.LogFormat = f.LogFormat
	}
	if changed("fake") {
		c.Fake = f.Fake
	}
	for _, s := range f.Toggles {
		t, err := ParseToggle(s)
		if err != nil {
			return fmt.Errorf("--toggle: %w", err)
		}
		c.SetToggle(t)
	}
	return nil
}

// Load resolves the configuration for cmd: defaults, then the config file,
// then the environment, then flags. The result is validated.
func (f *Flags) Load(cmd *cobra.Command, getenv func(string) string) (*Config, error) {
	c := New()

	path := f.ConfigPath
	if path == "" {
		path = getenv(EnvConfig)
	}
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := c.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	if err := f.Apply(cmd.Flags(), c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
