package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   string
	}{
		{
			name:   "explicit log level wins",
			config: &Config{LogLevel: "error", Verbose: true},
			want:   "error",
		},
		{
			name:   "verbose shortcut",
			config: &Config{Verbose: true, LogLevel: "info"},
			want:   "debug",
		},
		{
			name:   "quiet shortcut",
			config: &Config{Quiet: true},
			want:   "warn",
		},
		{
			name:   "verbose and quiet resolves to quiet",
			config: &Config{Verbose: true, Quiet: true},
			want:   "warn",
		},
		{
			name:   "default",
			config: &Config{},
			want:   "info",
		},
		{
			name:   "invalid level falls back to info",
			config: &Config{LogLevel: "loud"},
			want:   "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(tt.config))
		})
	}
}

func TestNewLoggerHonoursConfig(t *testing.T) {
	logger := NewLogger(&Config{LogLevel: "error", LogFormat: "json", LogOutput: "discard"})
	assert.Equal(t, "error", logger.GetLevel().String())
}
