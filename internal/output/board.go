package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/config"
)

// unicodeGlyphs holds the chess symbols indexed by kind, White then Black.
var unicodeGlyphs = [2][7]rune{
	{'.', '♙', '♘', '♗', '♖', '♕', '♔'},
	{'.', '♟', '♞', '♝', '♜', '♛', '♚'},
}

// Glyph returns how a piece is drawn in the given glyph set.
// Empty squares are drawn as '.' in both sets.
func Glyph(p chess.Piece, set config.GlyphSet) rune {
	if set == config.UnicodeGlyphs && !p.IsEmpty() {
		return unicodeGlyphs[p.Colour][p.Kind]
	}
	return rune(p.Symbol())
}

// WriteBoard draws the position. White's first rank is at the bottom
// unless display.Flip is set.
func WriteBoard(w io.Writer, board *chess.Board, display *config.DisplayConfig) {
	files := make([]int, chess.BoardSize)
	ranks := make([]int, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		files[i] = i
		ranks[i] = chess.BoardSize - 1 - i
		if display.Flip {
			files[i] = chess.BoardSize - 1 - i
			ranks[i] = i
		}
	}

	var header, rule string
	if display.Coordinates {
		var sb strings.Builder
		sb.WriteString("   ")
		for _, f := range files {
			fmt.Fprintf(&sb, " %c ", chess.FileBase+f)
		}
		header = strings.TrimRight(sb.String(), " ")
		rule = "   " + strings.Repeat("-", 3*chess.BoardSize+1)
		fmt.Fprintln(w, header)
		fmt.Fprintln(w, rule)
	}

	for _, r := range ranks {
		var sb strings.Builder
		if display.Coordinates {
			fmt.Fprintf(&sb, "%c | ", chess.RankBase+r)
		}
		for i, f := range files {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteRune(Glyph(board.Squares[f][r], display.Glyphs))
		}
		if display.Coordinates {
			fmt.Fprintf(&sb, "  | %c", chess.RankBase+r)
		}
		fmt.Fprintln(w, sb.String())
	}

	if display.Coordinates {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, header)
	}
}
