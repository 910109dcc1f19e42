package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// Reasons a move is refused, reported through errors.MoveError.
const (
	reasonNoPiece       = "no piece on the source square"
	reasonNotYourPiece  = "not your piece"
	reasonOffBoard      = "destination is off the board"
	reasonNullMove      = "source and destination are the same square"
	reasonOwnPiece      = "destination holds your own piece"
	reasonCannotMove    = "piece cannot move like that"
	reasonLeavesInCheck = "move leaves your king in check"
)

// IsPseudoLegal checks piece movement and occupancy rules, including
// castling and en passant, without considering whether the mover's own
// king is left in check.
func IsPseudoLegal(board *chess.Board, from, to chess.Square) bool {
	return pseudoLegalReason(board, from, to) == ""
}

// IsLegalMove returns true if side may play from-to in this position.
func IsLegalMove(board *chess.Board, from, to chess.Square, side chess.Colour) bool {
	return illegalReason(board, from, to, side) == ""
}

// pseudoLegalReason returns why from-to fails the pseudo-legality rules,
// or "" if it passes.
func pseudoLegalReason(board *chess.Board, from, to chess.Square) string {
	mover := board.Get(from)
	if mover.IsEmpty() {
		return reasonNoPiece
	}
	if !to.Valid() {
		return reasonOffBoard
	}
	if from == to {
		return reasonNullMove
	}

	target := board.Get(to)
	if !target.IsEmpty() && target.Colour == mover.Colour {
		return reasonOwnPiece
	}

	if CanPieceMove(board, from, to) {
		return ""
	}
	if isCastleMove(board, from, to) && CanCastle(board, from, to, mover.Colour) {
		return ""
	}
	if isEnPassantCapture(board, from, to) {
		return ""
	}
	return reasonCannotMove
}

// illegalReason returns why side may not play from-to, or "" if the move
// is legal.
func illegalReason(board *chess.Board, from, to chess.Square, side chess.Colour) string {
	mover := board.Get(from)
	if mover.IsEmpty() {
		return reasonNoPiece
	}
	if mover.Colour != side {
		return reasonNotYourPiece
	}
	if reason := pseudoLegalReason(board, from, to); reason != "" {
		return reason
	}
	if !tryMove(board, from, to, side) {
		return reasonLeavesInCheck
	}
	return ""
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := *board
	applyUnchecked(&testBoard, from, to)
	return !IsKingInCheck(&testBoard, colour)
}

// HasAnyLegalMove returns true if the given colour has at least one legal move.
func HasAnyLegalMove(board *chess.Board, colour chess.Colour) bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board.Squares[file][rank]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			from := chess.Square{File: file, Rank: rank}
			if hasLegalMovesForPiece(board, from, colour) {
				return true
			}
		}
	}
	return false
}

// hasLegalMovesForPiece checks if the piece on from has any legal destination.
func hasLegalMovesForPiece(board *chess.Board, from chess.Square, colour chess.Colour) bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if IsLegalMove(board, from, chess.Square{File: file, Rank: rank}, colour) {
				return true
			}
		}
	}
	return false
}

// LegalMovesFrom lists every legal move of the piece on from, scanning
// destinations a1, a2 ... h8. It returns nil for an empty square, a piece
// of the other colour or an off-board square.
func LegalMovesFrom(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != colour {
		return nil
	}

	var moves []chess.Move
	for _, to := range chess.AllSquares() {
		if IsLegalMove(board, from, to, colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// AllLegalMoves lists every legal move for colour.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range chess.AllSquares() {
		moves = append(moves, LegalMovesFrom(board, from, colour)...)
	}
	return moves
}
