package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// IsPromotionPending returns true if a pawn of either colour stands on its
// promotion rank.
func IsPromotionPending(board *chess.Board, sq chess.Square) bool {
	piece := board.Get(sq)
	return piece.Kind == chess.Pawn && sq.Rank == piece.Colour.PromotionRank()
}

// Promote replaces the pawn on sq with a piece of the chosen kind and the
// same colour. Kinds a pawn cannot promote to become a queen. Promote is a
// no-op when sq does not hold a pawn.
func Promote(board *chess.Board, sq chess.Square, kind chess.Kind) {
	pawn := board.Get(sq)
	if pawn.Kind != chess.Pawn {
		return
	}
	if !kind.IsPromotionChoice() {
		kind = chess.Queen // Default to queen
	}
	promoted := chess.NewPiece(pawn.Colour, kind)
	promoted.Moved = true
	board.Set(sq, promoted)
}
