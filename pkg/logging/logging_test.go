package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{"info", "json", zapcore.InfoLevel, zapcore.DebugLevel},
		{"error", "console", zapcore.ErrorLevel, zapcore.WarnLevel},
		{"debug", "", zapcore.DebugLevel, zapcore.DebugLevel - 1},
	}

	for _, tt := range tests {
		logger, err := New(tt.level, tt.format)
		if err != nil {
			t.Fatalf("New(%q, %q) failed: %v", tt.level, tt.format, err)
		}
		if !logger.Core().Enabled(tt.enabled) {
			t.Errorf("New(%q): level %v should be enabled", tt.level, tt.enabled)
		}
		if logger.Core().Enabled(tt.disabled) {
			t.Errorf("New(%q): level %v should be disabled", tt.level, tt.disabled)
		}
	}
}

func TestNewRejects(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Errorf("New with bad level succeeded")
	}
	if _, err := New("info", "xml"); err == nil {
		t.Errorf("New with bad format succeeded")
	}
}
