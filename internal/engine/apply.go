package engine

import (
	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// MakeMove applies a legal move for side and reports what happened.
// An illegal move returns a *errors.MoveError wrapping errors.ErrIllegalMove
// and leaves the board untouched. MakeMove does not detect checkmate or
// stalemate; use Status afterwards.
func MakeMove(board *chess.Board, from, to chess.Square, side chess.Colour) (chess.MoveResult, error) {
	if reason := illegalReason(board, from, to, side); reason != "" {
		return chess.MoveResult{}, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			MoveText: chess.Move{From: from, To: to}.String(),
			Side:     side.String(),
			Reason:   reason,
		}
	}

	captured := board.Get(to)
	enPassant := isEnPassantCapture(board, from, to)

	applyUnchecked(board, from, to)

	return chess.MoveResult{
		CapturedKing: captured.Kind == chess.King,
		GaveCheck:    IsKingInCheck(board, side.Opposite()),
		WasCapture:   !captured.IsEmpty() || enPassant,
	}, nil
}

// applyUnchecked performs a move without any legality checks: the piece
// moves, a castling rook follows its king, an en passant victim is removed
// and the en passant window is opened or closed.
func applyUnchecked(board *chess.Board, from, to chess.Square) {
	mover := board.Get(from)
	castle := isCastleMove(board, from, to)
	enPassant := isEnPassantCapture(board, from, to)
	victim := board.EPVictim

	relocate(board, from, to)

	if castle {
		moveCastlingRook(board, to)
	}

	if enPassant {
		board.Clear(victim)
	}

	if isDoublePush(mover, from, to) {
		board.EnPassant = true
		board.EPSquare = from.Offset(0, mover.Colour.Forward())
		board.EPVictim = to
	} else {
		board.ClearEnPassant()
	}
}

// relocate moves whatever stands on from to to and marks it as moved.
func relocate(board *chess.Board, from, to chess.Square) {
	piece := board.Get(from)
	if !piece.IsEmpty() {
		piece.Moved = true
	}
	board.Set(to, piece)
	board.Clear(from)
}
