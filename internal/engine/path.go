package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// isDiagonal reports whether the move runs along a diagonal.
func isDiagonal(from, to chess.Square) bool {
	df, dr := deltas(from, to)
	return df != 0 && abs(df) == abs(dr)
}

// isStraight reports whether the move runs along a file or a rank.
func isStraight(from, to chess.Square) bool {
	df, dr := deltas(from, to)
	return (df == 0) != (dr == 0)
}

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a file, rank or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	df, dr := deltas(from, to)
	fileDir := sign(df)
	rankDir := sign(dr)

	sq := from.Offset(fileDir, rankDir)
	for sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(fileDir, rankDir)
	}

	return true
}
