// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/console-chess-go/internal/config"
)

var (
	// Players
	whiteName = flag.String("white", "", "White player's name (skips the name prompts)")
	blackName = flag.String("black", "", "Black player's name (skips the name prompts)")

	// Display options
	unicodeGlyphs = flag.Bool("unicode", false, "Draw pieces with Unicode chess symbols")
	flipBoard     = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords      = flag.Bool("nocoords", false, "Don't print rank and file labels")
	noHistory     = flag.Bool("nohistory", false, "Don't print the move list under the board")

	// Play options
	autoQueen = flag.Bool("autoqueen", false, "Promote to a queen without asking")

	// Logging
	logFile   = flag.String("l", "", "Write a JSON session log to this file")
	appendLog = flag.String("L", "", "Append a JSON session log to this file")
	verbose   = flag.Bool("v", false, "Verbose mode (legal-move count after each move, debug log level)")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (board and prompts only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPlayerFlags(cfg)
	applyDisplayFlags(cfg)
	applyLogFlags(cfg)

	cfg.AutoQueen = *autoQueen

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
		cfg.Log.Debug = true
	}
}

// applyPlayerFlags sets names given on the command line. Either name
// turns the interactive prompts off.
func applyPlayerFlags(cfg *config.Config) {
	if *whiteName == "" && *blackName == "" {
		return
	}
	cfg.Players.SetNames(*whiteName, *blackName)
	cfg.Players.AskNames = false
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	if *unicodeGlyphs {
		cfg.Display.Glyphs = config.UnicodeGlyphs
	}
	cfg.Display.Flip = *flipBoard
	cfg.Display.Coordinates = !*noCoords
	cfg.Display.ShowHistory = !*noHistory
}

// applyLogFlags configures the session log file. -L wins over -l.
func applyLogFlags(cfg *config.Config) {
	switch {
	case *appendLog != "":
		cfg.Log.Path = *appendLog
		cfg.Log.Append = true
	case *logFile != "":
		cfg.Log.Path = *logFile
	}
}
