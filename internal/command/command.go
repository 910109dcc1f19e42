// Package command turns a line typed at the shell prompt into a Command.
package command

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Kind identifies what the player asked for.
type Kind int

const (
	Empty Kind = iota
	Move
	Castle
	Hint
	Pip
	Resign
	Help
	Quit
)

// String returns the string representation of a command kind.
func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Castle:
		return "castle"
	case Hint:
		return "hint"
	case Pip:
		return "pip"
	case Resign:
		return "resign"
	case Help:
		return "help"
	case Quit:
		return "quit"
	default:
		return "empty"
	}
}

// Command is one parsed line of input.
type Command struct {
	Kind     Kind
	Move     chess.Move   // Move
	Kingside bool         // Castle
	Square   chess.Square // Pip
}

// HelpText lists the commands understood by Parse.
var HelpText = []string{
	"Commands:",
	"  e2e4      Make a move (from-to).",
	"  hint      Show all legal moves for the current player.",
	"  pip e2    List legal moves from a specific square.",
	"  o-o       Castle kingside (or e1g1 / e8g8).",
	"  o-o-o     Castle queenside (or e1c1 / e8c8).",
	"  resign    Resign the game (alias: r).",
	"  help      Show commands (alias: ?).",
	"  q         Quit.",
}

// Normalize narrows full-width characters, trims surrounding space and
// lowercases the line.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(width.Narrow.String(line)))
}

// Parse interprets a line of input. A blank line is an Empty command.
// Four-character tokens are moves; anything else unrecognised fails with
// errors.ErrUnknownCommand.
func Parse(line string) (Command, error) {
	text := Normalize(line)

	switch text {
	case "":
		return Command{Kind: Empty}, nil
	case "q", "quit":
		return Command{Kind: Quit}, nil
	case "help", "?":
		return Command{Kind: Help}, nil
	case "hint":
		return Command{Kind: Hint}, nil
	case "resign", "r":
		return Command{Kind: Resign}, nil
	case "o-o", "0-0":
		return Command{Kind: Castle, Kingside: true}, nil
	case "o-o-o", "0-0-0":
		return Command{Kind: Castle}, nil
	}

	fields := strings.Fields(text)
	if fields[0] == "pip" {
		return parsePip(line, fields)
	}

	if len(text) == 4 {
		m, err := chess.ParseMove(text)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Move, Move: m}, nil
	}

	return Command{}, &errors.ParseError{
		Err:      errors.ErrUnknownCommand,
		Input:    strings.TrimSpace(line),
		Expected: "a move like e2e4 or a command (type 'help')",
	}
}

func parsePip(line string, fields []string) (Command, error) {
	if len(fields) != 2 {
		return Command{}, &errors.ParseError{
			Err:      errors.ErrUnknownCommand,
			Input:    strings.TrimSpace(line),
			Expected: "pip <square> (e.g. pip e2)",
		}
	}
	sq, err := chess.ParseSquare(fields[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: Pip, Square: sq}, nil
}

// promotionChoices maps accepted answers to piece kinds.
var promotionChoices = map[string]chess.Kind{
	"q": chess.Queen, "queen": chess.Queen,
	"r": chess.Rook, "rook": chess.Rook,
	"b": chess.Bishop, "bishop": chess.Bishop,
	"n": chess.Knight, "knight": chess.Knight,
}

// ParsePromotion reads the answer to the promotion prompt.
func ParsePromotion(line string) (chess.Kind, error) {
	if kind, ok := promotionChoices[Normalize(line)]; ok {
		return kind, nil
	}
	return chess.NoKind, &errors.ParseError{
		Err:      errors.ErrInvalidPromotion,
		Input:    strings.TrimSpace(line),
		Expected: "q, r, b or n",
	}
}
