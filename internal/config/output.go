package config

// GlyphSet selects how pieces are drawn.
type GlyphSet int

const (
	ASCIIGlyphs   GlyphSet = iota // Letters: uppercase White, lowercase Black
	UnicodeGlyphs                 // Chess symbols U+2654..U+265F
)

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Glyphs selects letters or Unicode chess symbols
	Glyphs GlyphSet

	// Flip draws the board from Black's side
	Flip bool

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool

	// ShowHistory prints the move list under the board
	ShowHistory bool

	// ShowCheck prints a notice when the side to move is in check
	ShowCheck bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Glyphs:      ASCIIGlyphs,
		Coordinates: true,
		ShowHistory: true,
		ShowCheck:   true,
	}
}
