package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// Files involved in castling.
const (
	kingsideKingFile  = 6 // g
	kingsideRookFrom  = 7 // h
	kingsideRookTo    = 5 // f
	queensideKingFile = 2 // c
	queensideRookFrom = 0 // a
	queensideRookTo   = 3 // d
)

// isCastleMove reports whether the move is a king stepping two files along
// its rank, which is how castling is written in coordinate notation.
func isCastleMove(board *chess.Board, from, to chess.Square) bool {
	return board.Get(from).Kind == chess.King &&
		from.Rank == to.Rank &&
		abs(to.File-from.File) == 2
}

// castleRookSquares returns where the rook starts and lands for a castling
// king landing on kingTo.
func castleRookSquares(kingTo chess.Square) (rookFrom, rookTo chess.Square, ok bool) {
	switch kingTo.File {
	case kingsideKingFile:
		return chess.Square{File: kingsideRookFrom, Rank: kingTo.Rank},
			chess.Square{File: kingsideRookTo, Rank: kingTo.Rank}, true
	case queensideKingFile:
		return chess.Square{File: queensideRookFrom, Rank: kingTo.Rank},
			chess.Square{File: queensideRookTo, Rank: kingTo.Rank}, true
	}
	return chess.Square{}, chess.Square{}, false
}

// CanCastle checks the castling conditions for the king on from moving to
// to: king and rook unmoved on the home rank, nothing between them, king
// not in check and neither the square it crosses nor the one it lands on
// attacked.
func CanCastle(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	king := board.Get(from)
	if !king.Is(colour, chess.King) || king.Moved {
		return false
	}

	home := colour.HomeRank()
	if from.Rank != home || to.Rank != home || abs(to.File-from.File) != 2 {
		return false
	}

	rookFrom, _, ok := castleRookSquares(to)
	if !ok {
		return false
	}
	rook := board.Get(rookFrom)
	if !rook.Is(colour, chess.Rook) || rook.Moved {
		return false
	}

	if !isPathClear(board, from, rookFrom) {
		return false
	}

	if IsKingInCheck(board, colour) {
		return false
	}

	opponent := colour.Opposite()
	step := sign(to.File - from.File)
	for sq := from.Offset(step, 0); ; sq = sq.Offset(step, 0) {
		if IsSquareAttacked(board, sq, opponent) {
			return false
		}
		if sq == to {
			break
		}
	}

	return true
}

// moveCastlingRook relocates the rook that accompanies a castling king.
func moveCastlingRook(board *chess.Board, kingTo chess.Square) {
	rookFrom, rookTo, ok := castleRookSquares(kingTo)
	if !ok {
		return
	}
	relocate(board, rookFrom, rookTo)
}
