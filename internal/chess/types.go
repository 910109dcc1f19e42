// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of this colour start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// PromotionRank returns the farthest rank for pawns of this colour.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to this kind.
func (k Kind) IsPromotionChoice() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// Piece is the content of a square. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind

	// Moved is set the first time the piece is relocated and never cleared.
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the piece value denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return !p.IsEmpty() && p.Colour == colour && p.Kind == kind
}

// Symbol returns the one-character rendering: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Symbol() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromSymbol converts a piece letter to an unmoved piece. Uppercase
// letters give white pieces, lowercase black ones.
func PieceFromSymbol(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return NewPiece(colour, Pawn), true
	case 'N':
		return NewPiece(colour, Knight), true
	case 'B':
		return NewPiece(colour, Bishop), true
	case 'R':
		return NewPiece(colour, Rook), true
	case 'Q':
		return NewPiece(colour, Queen), true
	case 'K':
		return NewPiece(colour, King), true
	}
	return Piece{}, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)
