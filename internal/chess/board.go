package chess

// Board represents a chess board with all state needed for rule checking.
// It is a plain value: assigning or copying a Board copies every square.
type Board struct {
	// The board squares, indexed Squares[file][rank].
	Squares [BoardSize][BoardSize]Piece

	// Is en passant capture possible? If so then EPSquare is the square a
	// capturing pawn lands on and EPVictim holds the pawn that is removed.
	// Both are only set immediately after a pawn double-step.
	EnPassant bool
	EPSquare  Square
	EPVictim  Square
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][White.HomeRank()] = W(backRank[file])
		b.Squares[file][White.PawnRank()] = W(Pawn)
		b.Squares[file][Black.PawnRank()] = B(Pawn)
		b.Squares[file][Black.HomeRank()] = B(backRank[file])
	}
}

// Get returns the piece on the square. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece on the square. Setting an off-board square is a no-op.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = piece
	}
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// ClearEnPassant closes the en passant window.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Square{}
	b.EPVictim = Square{}
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.Squares[file][rank]
			if !p.IsEmpty() && p.Colour == colour {
				n++
			}
		}
	}
	return n
}
