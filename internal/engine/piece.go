package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// CanPieceMove checks the movement rule of the piece standing on from.
// King safety, turn order, castling and en passant are not considered here,
// and a destination holding a piece of the mover's colour is left for the
// caller to reject.
func CanPieceMove(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece.IsEmpty() || from == to {
		return false
	}

	df, dr := deltas(from, to)
	fileDiff := abs(df)
	rankDiff := abs(dr)

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour, from, to)

	case chess.Knight:
		return fileDiff*rankDiff == 2

	case chess.Bishop:
		return isDiagonal(from, to) && isPathClear(board, from, to)

	case chess.Rook:
		return isStraight(from, to) && isPathClear(board, from, to)

	case chess.Queen:
		if isDiagonal(from, to) || isStraight(from, to) {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return max(fileDiff, rankDiff) == 1
	}

	return false
}
