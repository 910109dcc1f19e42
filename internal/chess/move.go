package chess

import (
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Move is a from/to pair in coordinate notation.
type Move struct {
	From Square
	To   Square
}

// ParseMove parses a four-character coordinate token such as "e2e4".
func ParseMove(token string) (Move, error) {
	if len(token) != 4 {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: token, Expected: "move like e2e4"}
	}
	from, err := ParseSquare(token[:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", token)
	}
	to, err := ParseSquare(token[2:])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", token)
	}
	return Move{From: from, To: to}, nil
}

// String returns the move in coordinate notation.
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// MoveResult reports what applying a move did, for building notation.
type MoveResult struct {
	// CapturedKing is true if the destination square held a king.
	CapturedKing bool

	// GaveCheck is true if the opposing king is in check after the move.
	GaveCheck bool

	// WasCapture is true for any capture, en passant included.
	WasCapture bool
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Suffix returns the notation suffix for the status.
func (c CheckStatus) Suffix() string {
	switch c {
	case Check:
		return "+"
	case Checkmate:
		return "#"
	default:
		return ""
	}
}
