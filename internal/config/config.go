// Package config provides configuration for console-chess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // Only the board and prompts
	Normal  = 1 // Move confirmations
	Verbose = 2 // Legal-move count after each ply, debug logging
)

// Config holds all program configuration.
type Config struct {
	Players *PlayerConfig
	Display *DisplayConfig
	Log     *LogConfig

	// AutoQueen promotes to a queen without asking.
	AutoQueen bool

	Verbosity int

	// Output streams. Refused moves and bad input go to ErrorFile.
	OutputFile io.Writer
	ErrorFile  io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Players:    NewPlayerConfig(),
		Display:    NewDisplayConfig(),
		Log:        NewLogConfig(),
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		ErrorFile:  os.Stderr,
	}
}

// SetOutput sets the stream the board and messages are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetErrorOutput sets the stream refusals and input errors are written to.
func (c *Config) SetErrorOutput(w io.Writer) {
	c.ErrorFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d out of range [%d, %d]: %w",
			c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	if err := c.Players.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
