package config

import (
	"fmt"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// LogConfig holds settings for the structured session log.
type LogConfig struct {
	// Path of the log file; empty disables logging
	Path string

	// Append keeps existing content instead of truncating
	Append bool

	// Debug also records rejected moves
	Debug bool
}

// NewLogConfig creates a LogConfig with logging disabled.
func NewLogConfig() *LogConfig {
	return &LogConfig{}
}

// Enabled reports whether a log file was requested.
func (l *LogConfig) Enabled() bool {
	return l.Path != ""
}

// Validate checks the log settings.
func (l *LogConfig) Validate() error {
	if l.Append && l.Path == "" {
		return fmt.Errorf("append requested without a log file: %w", errors.ErrInvalidConfig)
	}
	return nil
}
