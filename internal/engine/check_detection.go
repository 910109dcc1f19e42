package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalSliders = []chess.Kind{chess.Bishop, chess.Queen}
	straightSliders = []chess.Kind{chess.Rook, chess.Queen}
)

// IsKingInCheck returns true if the given colour's king is in check.
// A board without that king (a trial board after a king capture) is not in check.
func IsKingInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if board.Squares[file][rank].Is(colour, chess.King) {
				return chess.Square{File: file, Rank: rank}, true
			}
		}
	}
	return chess.Square{}, false
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank behind the square
	// from the attacker's point of view.
	pawnRank := -byColour.Forward()
	for _, df := range []int{-1, 1} {
		if board.Get(sq.Offset(df, pawnRank)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(byColour, chess.Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(byColour, chess.King) {
			return true
		}
	}

	for _, dir := range diagonalDirs {
		if rayHits(board, sq, dir, byColour, diagonalSliders) {
			return true
		}
	}

	for _, dir := range orthogonalDirs {
		if rayHits(board, sq, dir, byColour, straightSliders) {
			return true
		}
	}

	return false
}

// rayHits walks from sq in direction dir and reports whether the first
// occupied square holds a byColour piece of one of the given kinds.
func rayHits(board *chess.Board, sq chess.Square, dir [2]int, byColour chess.Colour, kinds []chess.Kind) bool {
	cur := sq.Offset(dir[0], dir[1])
	for cur.Valid() {
		piece := board.Get(cur)
		if !piece.IsEmpty() {
			if piece.Colour != byColour {
				return false
			}
			for _, k := range kinds {
				if piece.Kind == k {
					return true
				}
			}
			return false // Blocked
		}
		cur = cur.Offset(dir[0], dir[1])
	}
	return false
}
