package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/command"
	"github.com/lgbarn/console-chess-go/internal/config"
	chesserrors "github.com/lgbarn/console-chess-go/internal/errors"
	"github.com/lgbarn/console-chess-go/internal/output"
	"github.com/lgbarn/console-chess-go/internal/session"
)

// Shell is the read-eval-print loop for one game.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
	cfg     *config.Config
	printer *output.Printer
	logger  *zap.Logger
}

// NewShell creates a shell reading commands from in.
func NewShell(in io.Reader, cfg *config.Config, logger *zap.Logger) *Shell {
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     cfg.OutputFile,
		errOut:  cfg.ErrorFile,
		cfg:     cfg,
		printer: output.NewPrinter(cfg.OutputFile, cfg.Display),
		logger:  logger,
	}
}

// Run plays one game until it ends, a player quits or input runs out.
func (sh *Shell) Run() error {
	fmt.Fprintln(sh.out, "== Console Chess ==")
	if sh.cfg.Players.AskNames {
		white, _ := sh.prompt("Enter White player name: ")
		black, _ := sh.prompt("Enter Black player name: ")
		sh.cfg.Players.SetNames(white, black)
	}

	s := session.New(sh.cfg.Players.White, sh.cfg.Players.Black, sh.logger)
	if sh.cfg.Verbosity > config.Quiet {
		sh.printer.Players(s)
	}

	for {
		sh.printer.Position(s)

		line, ok := sh.prompt(s.Name(s.Turn()) + " to move > ")
		if !ok {
			fmt.Fprintln(sh.out, "Goodbye.")
			return sh.in.Err()
		}

		cmd, err := command.Parse(line)
		if err != nil {
			sh.reportError(err)
			continue
		}

		switch cmd.Kind {
		case command.Empty:
			continue
		case command.Quit:
			fmt.Fprintln(sh.out, "Goodbye.")
			return nil
		case command.Help:
			sh.printer.Help(command.HelpText)
		case command.Hint:
			sh.printer.Hint(s)
		case command.Pip:
			sh.printer.Pip(s, cmd.Square)
		case command.Resign:
			if err := s.Resign(); err != nil {
				return err
			}
		case command.Castle:
			sh.play(s, s.CastleMove(cmd.Kingside))
		case command.Move:
			sh.play(s, cmd.Move)
		}

		if s.Over() {
			if s.Result().Outcome != session.Resignation {
				sh.printer.Position(s)
			}
			sh.printer.Result(s)
			return nil
		}
	}
}

// play submits a move and completes a promotion if the move needs one.
func (sh *Shell) play(s *session.Session, m chess.Move) {
	mover := s.Name(s.Turn())
	rep, err := s.PlayMove(m)
	if err != nil {
		sh.reportError(err)
		return
	}

	if rep.PromotionPending {
		kind := chess.Queen
		if !sh.cfg.AutoQueen {
			kind = sh.askPromotion(s)
		}
		rep, err = s.Promote(kind)
		if err != nil {
			sh.reportError(err)
			return
		}
	}

	if sh.cfg.Verbosity > config.Quiet {
		fmt.Fprintf(sh.out, "%s plays %s\n", mover, rep.Notation)
	}
	if sh.cfg.Verbosity >= config.Verbose && !s.Over() {
		fmt.Fprintf(sh.out, "%s has %d legal moves.\n", s.Name(s.Turn()), len(s.Hint()))
	}
}

// askPromotion asks until it gets a valid choice. A queen is chosen if
// input runs out.
func (sh *Shell) askPromotion(s *session.Session) chess.Kind {
	for {
		line, ok := sh.prompt(s.Name(s.Turn()) + " promotion (q/r/b/n): ")
		if !ok {
			return chess.Queen
		}
		kind, err := command.ParsePromotion(line)
		if err == nil {
			return kind
		}
		fmt.Fprintln(sh.out, "Please type q, r, b, or n.")
	}
}

// prompt prints text and reads one line. It returns false at end of input.
func (sh *Shell) prompt(text string) (string, bool) {
	fmt.Fprint(sh.out, text)
	if !sh.in.Scan() {
		fmt.Fprintln(sh.out)
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

// reportError turns an error from parsing or playing into a message on the
// error stream.
func (sh *Shell) reportError(err error) {
	var moveErr *chesserrors.MoveError
	var parseErr *chesserrors.ParseError

	switch {
	case errors.As(err, &moveErr):
		fmt.Fprintf(sh.errOut, "Illegal move: %s. Try 'hint' or 'pip e2'.\n", moveErr.Reason)
	case errors.Is(err, chesserrors.ErrUnknownCommand) && errors.As(err, &parseErr) && strings.HasPrefix(parseErr.Expected, "pip"):
		fmt.Fprintf(sh.errOut, "Usage: %s\n", parseErr.Expected)
	case errors.Is(err, chesserrors.ErrUnknownCommand):
		fmt.Fprintln(sh.errOut, "Unknown command. Type 'help' to see all commands.")
	case errors.Is(err, chesserrors.ErrInvalidSquare):
		fmt.Fprintln(sh.errOut, "Invalid square.")
	default:
		fmt.Fprintf(sh.errOut, "Error: %v\n", err)
	}
}
