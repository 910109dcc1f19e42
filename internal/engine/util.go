package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// deltas returns the file and rank displacement of a move.
func deltas(from, to chess.Square) (df, dr int) {
	return to.File - from.File, to.Rank - from.Rank
}
