// console-chess is a two-player chess game for the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/console-chess-go/internal/command"
	"github.com/lgbarn/console-chess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("console-chess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, cleanup, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := NewShell(os.Stdin, cfg, logger).Run(); err != nil {
		fmt.Fprintf(cfg.ErrorFile, "Error reading input: %v\n", err)
		cleanup()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: console-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players share the keyboard. Moves are typed as from-to squares (e2e4).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands at the prompt:\n")
	for _, line := range command.HelpText[1:] {
		fmt.Fprintf(os.Stderr, "%s\n", line)
	}
}
