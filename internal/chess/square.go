package chess

import (
	"strings"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// NewSquare creates a square, failing with ErrInvalidSquare when either
// coordinate is outside [0,7].
func NewSquare(file, rank int) (Square, error) {
	sq := Square{File: file, Rank: rank}
	if !sq.Valid() {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "file %d rank %d", file, rank)
	}
	return sq, nil
}

// ParseSquare parses algebraic text such as "e2". The file letter is
// case-insensitive.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "square like e2"}
	}
	file := int(strings.ToLower(text[:1])[0]) - FileBase
	rank := int(text[1]) - RankBase
	sq := Square{File: file, Rank: rank}
	if !sq.Valid() {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "file a-h and rank 1-8"}
	}
	return sq, nil
}

// Valid reports whether both coordinates are on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by the given file and rank deltas.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// AllSquares returns the 64 squares in file-major order (a1, a2 ... h8).
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			squares = append(squares, Square{File: file, Rank: rank})
		}
	}
	return squares
}
