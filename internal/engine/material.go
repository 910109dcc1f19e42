package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Kind
	var bishopOnLight [2]bool

	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board.Squares[file][rank]
			switch piece.Kind {
			case chess.NoKind, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Bishop:
				bishopOnLight[piece.Colour] = isLightSquare(chess.Square{File: file, Rank: rank})
			}
			minors[piece.Colour] = append(minors[piece.Colour], piece.Kind)
		}
	}

	white, black := minors[chess.White], minors[chess.Black]

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		// A lone minor piece, bishop or knight
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File+sq.Rank)%2 == 1
}
