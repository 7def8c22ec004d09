package config

import (
	"time"

	"Heartbeat/pkg/heartbeat"
	"Heartbeat/pkg/logging"
)

// Default configuration values.
const (
	DefaultUnit      = heartbeat.DefaultUnit
	DefaultOutput    = "-"
	DefaultInterval  = 10 * time.Second
	DefaultCount     = 0
	DefaultLogLevel  = "info"
	DefaultLogFormat = logging.FormatJSON
)

// Environment variables.
const (
	EnvConfig    = "HEARTBEAT_CONFIG"
	EnvUnit      = "HEARTBEAT_UNIT"
	EnvToggles   = "HEARTBEAT_TOGGLES"
	EnvOutput    = "HEARTBEAT_OUTPUT"
	EnvFailure   = "HEARTBEAT_FAILURE"
	EnvLogLevel  = "HEARTBEAT_LOG_LEVEL"
	EnvLogFormat = "HEARTBEAT_LOG_FORMAT"
)
