package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Default player names, used when a prompt is left blank.
const (
	DefaultWhiteName = "White"
	DefaultBlackName = "Black"
)

// maxNameLength bounds a player name so the prompt line stays readable.
const maxNameLength = 40

// PlayerConfig holds the names shown in prompts and results.
type PlayerConfig struct {
	White string
	Black string

	// AskNames controls whether the shell prompts for names on start.
	// Names given on the command line turn it off.
	AskNames bool
}

// NewPlayerConfig creates a PlayerConfig with default names.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		White:    DefaultWhiteName,
		Black:    DefaultBlackName,
		AskNames: true,
	}
}

// SetNames stores trimmed names, keeping the current ones for blank input.
func (p *PlayerConfig) SetNames(white, black string) {
	if w := strings.TrimSpace(white); w != "" {
		p.White = w
	}
	if b := strings.TrimSpace(black); b != "" {
		p.Black = b
	}
}

// Validate checks that both names are present and not too long.
func (p *PlayerConfig) Validate() error {
	for _, name := range []string{p.White, p.Black} {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("empty player name: %w", errors.ErrInvalidConfig)
		}
		if len([]rune(name)) > maxNameLength {
			return fmt.Errorf("player name %q longer than %d characters: %w",
				name, maxNameLength, errors.ErrInvalidConfig)
		}
	}
	return nil
}
