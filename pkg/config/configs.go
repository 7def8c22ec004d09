// Package config provides configuration management for the heartbeat
// processor. Values are resolved as defaults < YAML file < environment
// variables < command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"Heartbeat/pkg/heartbeat"
	"Heartbeat/pkg/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all processor and host-harness settings.
type Config struct {
	Unit    heartbeat.Unit
	Toggles []heartbeat.Toggle

	// Destinations, see exporting.Open. An empty Failure only logs.
	Output  string
	Failure string

	// Interval and Count drive the run command; Count 0 runs until
	// interrupted.
	Interval time.Duration
	Count    int

	LogLevel  string
	LogFormat string

	// Fake replaces the host probe with fixed demo values.
	Fake bool
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Unit:      DefaultUnit,
		Output:    DefaultOutput,
		Interval:  DefaultInterval,
		Count:     DefaultCount,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

type fileConfig struct {
	StorageUnit string    `yaml:"storage_unit"`
	Toggles     yaml.Node `yaml:"toggles"`
	Output      *string   `yaml:"output"`
	Failure     *string   `yaml:"failure"`
	Interval    string    `yaml:"interval"`
	Count       *int      `yaml:"count"`
	LogLevel    string    `yaml:"log_level"`
	LogFormat   string    `yaml:"log_format"`
}

// LoadFile merges the YAML file at path into c. Toggle order follows the
// order of keys in the file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	return c.LoadYAML(data)
}

// LoadYAML merges a YAML document into c.
func (c *Config) LoadYAML(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if fc.StorageUnit != "" {
		c.Unit = heartbeat.Unit(fc.StorageUnit)
	}
	if fc.Output != nil {
		c.Output = *fc.Output
	}
	if fc.Failure != nil {
		c.Failure = *fc.Failure
	}
	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return fmt.Errorf("%w: interval: %v", ErrInvalidConfig, err)
		}
		c.Interval = d
	}
	if fc.Count != nil {
		c.Count = *fc.Count
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}

	toggles, err := decodeToggles(&fc.Toggles)
	if err != nil {
		return err
	}
	for _, t := range toggles {
		c.SetToggle(t)
	}
	return nil
}

func decodeToggles(node *yaml.Node) ([]heartbeat.Toggle, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	case yaml.MappingNode:
		toggles := make([]heartbeat.Toggle, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: toggle %q must be YES or NO (line %d)", ErrInvalidConfig, key.Value, val.Line)
			}
			value := val.Value
			if val.Tag == "!!null" || value == "" {
				value = heartbeat.DefaultToggleValue
			}
			toggles = append(toggles, heartbeat.Toggle{Name: key.Value, Value: value})
		}
		return toggles, nil
	}
	return nil, fmt.Errorf("%w: toggles must be a mapping of name to YES/NO (line %d)", ErrInvalidConfig, node.Line)
}

// ApplyEnv overrides c from HEARTBEAT_* variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvUnit); v != "" {
		c.Unit = heartbeat.Unit(v)
	}
	if v := getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := getenv(EnvFailure); v != "" {
		c.Failure = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := getenv(EnvToggles); v != "" {
		toggles, err := ParseToggles(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvToggles, err)
		}
		for _, t := range toggles {
			c.SetToggle(t)
		}
	}
	return nil
}

// SetToggle replaces the value of an existing toggle in place or appends
// a new one.
func (c *Config) SetToggle(t heartbeat.Toggle) {
	for i := range c.Toggles {
		if c.Toggles[i].Name == t.Name {
			c.Toggles[i].Value = t.Value
			return
		}
	}
	c.Toggles = append(c.Toggles, t)
}

// ParseToggle parses "name=VALUE". A bare "name" enables the toggle.
func ParseToggle(s string) (heartbeat.Toggle, error) {
	name, value, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !found || value == "" {
		value = heartbeat.DefaultToggleValue
	}
	t := heartbeat.Toggle{Name: name, Value: value}
	if err := t.Validate(); err != nil {
		return heartbeat.Toggle{}, err
	}
	return t, nil
}

// ParseToggles parses a comma-separated list of toggles.
func ParseToggles(s string) ([]heartbeat.Toggle, error) {
	var toggles []heartbeat.Toggle
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := ParseToggle(part)
		if err != nil {
			return nil, err
		}
		toggles = append(toggles, t)
	}
	return toggles, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := heartbeat.ParseUnit(string(c.Unit)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(c.Toggles))
	for _, t := range c.Toggles {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: duplicate toggle %q", ErrInvalidConfig, t.Name)
		}
		seen[t.Name] = true
	}

	if c.Interval < 0 {
		return fmt.Errorf("%w: interval cannot be negative, got %v", ErrInvalidConfig, c.Interval)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count cannot be negative, got %d", ErrInvalidConfig, c.Count)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.LogFormat != logging.FormatJSON && c.LogFormat != logging.FormatConsole {
		return fmt.Errorf("%w: invalid log format: %s (valid: json, console)", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
