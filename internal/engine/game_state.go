package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// GameStatus describes whether the side to move can continue.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsKingInCheck(board, colour) && !HasAnyLegalMove(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsKingInCheck(board, colour) && !HasAnyLegalMove(board, colour)
}

// Status classifies the position for colour to move.
func Status(board *chess.Board, colour chess.Colour) GameStatus {
	if HasAnyLegalMove(board, colour) {
		return Ongoing
	}
	if IsKingInCheck(board, colour) {
		return Checkmate
	}
	return Stalemate
}
