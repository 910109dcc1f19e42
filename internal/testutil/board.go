package testutil

import (
	"testing"

	"github.com/lgbarn/console-chess-go/internal/chess"
)

// MustSquare parses an algebraic square, failing the test on error.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustMove parses a coordinate move token, failing the test on error.
func MustMove(t testing.TB, token string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(token)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", token, err)
	}
	return m
}

// BoardFromPlacements builds an otherwise empty board from placements of
// the form "Ke1" (white king on e1) or "pd7" (black pawn on d7). Pieces
// are unmoved and no en passant window is open.
func BoardFromPlacements(t testing.TB, placements ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for _, p := range placements {
		if len(p) != 3 {
			t.Fatalf("bad placement %q: want piece letter and square", p)
		}
		piece, ok := chess.PieceFromSymbol(p[0])
		if !ok {
			t.Fatalf("bad placement %q: unknown piece %c", p, p[0])
		}
		board.Set(MustSquare(t, p[1:]), piece)
	}
	return board
}

// Moves parses a list of coordinate tokens.
func Moves(t testing.TB, tokens ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, 0, len(tokens))
	for _, tok := range tokens {
		moves = append(moves, MustMove(t, tok))
	}
	return moves
}

// MoveStrings renders moves in coordinate notation, for readable diffs.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
