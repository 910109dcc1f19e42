package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/console-chess-go/internal/errors"
)

// TestDisplayConfig_Defaults verifies DisplayConfig has sensible defaults
func TestDisplayConfig_Defaults(t *testing.T) {
	cfg := NewDisplayConfig()

	if cfg.Glyphs != ASCIIGlyphs {
		t.Errorf("Glyphs = %v, want %v", cfg.Glyphs, ASCIIGlyphs)
	}
	if cfg.Flip {
		t.Error("Flip should be false by default")
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
	if !cfg.ShowHistory {
		t.Error("ShowHistory should be true by default")
	}
	if !cfg.ShowCheck {
		t.Error("ShowCheck should be true by default")
	}
}

// TestPlayerConfig_Defaults verifies the default names
func TestPlayerConfig_Defaults(t *testing.T) {
	cfg := NewPlayerConfig()

	if cfg.White != "White" || cfg.Black != "Black" {
		t.Errorf("names = %q/%q, want White/Black", cfg.White, cfg.Black)
	}
	if !cfg.AskNames {
		t.Error("AskNames should be true by default")
	}
}

func TestPlayerConfig_SetNames(t *testing.T) {
	tests := []struct {
		name         string
		white, black string
		wantW, wantB string
	}{
		{"both names", "Alice", "Bob", "Alice", "Bob"},
		{"blank keeps default", "", "  ", "White", "Black"},
		{"names are trimmed", "  Alice ", "\tBob\n", "Alice", "Bob"},
		{"one blank", "Alice", "", "Alice", "Black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewPlayerConfig()
			cfg.SetNames(tt.white, tt.black)
			if cfg.White != tt.wantW || cfg.Black != tt.wantB {
				t.Errorf("names = %q/%q, want %q/%q", cfg.White, cfg.Black, tt.wantW, tt.wantB)
			}
		})
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "default config is valid",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty white name",
			modify:  func(c *Config) { c.Players.White = " " },
			wantErr: true,
		},
		{
			name:    "overlong black name",
			modify:  func(c *Config) { c.Players.Black = strings.Repeat("x", 41) },
			wantErr: true,
		},
		{
			name:    "verbosity too high",
			modify:  func(c *Config) { c.Verbosity = 3 },
			wantErr: true,
		},
		{
			name:    "negative verbosity",
			modify:  func(c *Config) { c.Verbosity = -1 },
			wantErr: true,
		},
		{
			name:    "append without path",
			modify:  func(c *Config) { c.Log.Append = true },
			wantErr: true,
		},
		{
			name: "append with path",
			modify: func(c *Config) {
				c.Log.Path = "chess.log"
				c.Log.Append = true
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}

	errBuf := &bytes.Buffer{}
	cfg.SetErrorOutput(errBuf)
	if cfg.ErrorFile != errBuf {
		t.Error("SetErrorOutput did not set ErrorFile")
	}
	if cfg.OutputFile != buf {
		t.Error("SetErrorOutput changed OutputFile")
	}
}

func TestLogConfig_Enabled(t *testing.T) {
	cfg := NewLogConfig()
	if cfg.Enabled() {
		t.Error("logging should be disabled by default")
	}
	cfg.Path = "game.log"
	if !cfg.Enabled() {
		t.Error("logging should be enabled once a path is set")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithPlayers("Alice", "Bob").
		WithNamePrompt(false).
		WithUnicode(true).
		WithFlip(true).
		WithCoordinates(false).
		WithAutoQueen(true).
		WithLogFile("chess.log", true).
		WithVerbosity(Verbose).
		WithOutput(buf).
		WithErrorOutput(errBuf).
		Build()

	if cfg.Players.White != "Alice" || cfg.Players.Black != "Bob" {
		t.Errorf("names = %q/%q, want Alice/Bob", cfg.Players.White, cfg.Players.Black)
	}
	if cfg.Players.AskNames {
		t.Error("AskNames should be false")
	}
	if cfg.Display.Glyphs != UnicodeGlyphs {
		t.Errorf("Glyphs = %v, want UnicodeGlyphs", cfg.Display.Glyphs)
	}
	if !cfg.Display.Flip {
		t.Error("Flip should be true")
	}
	if cfg.Display.Coordinates {
		t.Error("Coordinates should be false")
	}
	if !cfg.AutoQueen {
		t.Error("AutoQueen should be true")
	}
	if cfg.Log.Path != "chess.log" || !cfg.Log.Append {
		t.Errorf("Log = %+v, want chess.log in append mode", cfg.Log)
	}
	if !cfg.Log.Debug {
		t.Error("Verbose should enable debug logging")
	}
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.ErrorFile != errBuf {
		t.Error("WithErrorOutput did not set ErrorFile")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigBuilder_UnicodeOff(t *testing.T) {
	cfg := NewConfigBuilder().WithUnicode(true).WithUnicode(false).Build()
	if cfg.Display.Glyphs != ASCIIGlyphs {
		t.Errorf("Glyphs = %v, want ASCIIGlyphs", cfg.Display.Glyphs)
	}
}
