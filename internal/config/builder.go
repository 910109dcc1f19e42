package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets both player names. Blank names keep the defaults.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Players.SetNames(white, black)
	return b
}

// WithNamePrompt controls whether the shell asks for names.
func (b *ConfigBuilder) WithNamePrompt(ask bool) *ConfigBuilder {
	b.cfg.Players.AskNames = ask
	return b
}

// WithUnicode enables Unicode piece glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Display.Glyphs = UnicodeGlyphs
	} else {
		b.cfg.Display.Glyphs = ASCIIGlyphs
	}
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flip = enabled
	return b
}

// WithCoordinates controls the rank and file labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithAutoQueen promotes without prompting.
func (b *ConfigBuilder) WithAutoQueen(enabled bool) *ConfigBuilder {
	b.cfg.AutoQueen = enabled
	return b
}

// WithLogFile sets the log file path and whether to append to it.
func (b *ConfigBuilder) WithLogFile(path string, appendMode bool) *ConfigBuilder {
	b.cfg.Log.Path = path
	b.cfg.Log.Append = appendMode
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithErrorOutput sets the writer for refusals and input errors.
func (b *ConfigBuilder) WithErrorOutput(w io.Writer) *ConfigBuilder {
	b.cfg.ErrorFile = w
	return b
}

// WithVerbosity sets the verbosity level. Verbose also turns on debug logging.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	b.cfg.Log.Debug = level >= Verbose
	return b
}
