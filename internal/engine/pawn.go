package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// canPawnMove checks single and double pushes and diagonal captures.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	dir := colour.Forward()
	df, dr := deltas(from, to)
	target := board.Get(to)

	if df == 0 {
		if dr == dir && target.IsEmpty() {
			return true
		}
		// Double push from starting rank
		if from.Rank == colour.PawnRank() && dr == 2*dir && target.IsEmpty() {
			return board.IsEmpty(from.Offset(0, dir))
		}
		return false
	}

	return abs(df) == 1 && dr == dir && !target.IsEmpty() && target.Colour != colour
}

// isEnPassantCapture reports whether the move is a pawn stepping diagonally
// onto the current en passant square while the recorded victim is still an
// opposing pawn.
func isEnPassantCapture(board *chess.Board, from, to chess.Square) bool {
	if !board.EnPassant || to != board.EPSquare {
		return false
	}
	pawn := board.Get(from)
	if pawn.Kind != chess.Pawn || !board.IsEmpty(to) {
		return false
	}
	df, dr := deltas(from, to)
	if abs(df) != 1 || dr != pawn.Colour.Forward() {
		return false
	}
	return board.Get(board.EPVictim).Is(pawn.Colour.Opposite(), chess.Pawn)
}

// isDoublePush reports whether a pawn move from-to is a two-square advance.
func isDoublePush(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.Pawn && from.File == to.File &&
		to.Rank-from.Rank == 2*piece.Colour.Forward()
}
