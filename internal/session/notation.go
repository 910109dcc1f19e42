package session

import (
	"strings"

	"github.com/lgbarn/console-chess-go/internal/chess"
)

// Notation builds the history entry for a ply: origin, "x" on capture,
// destination, "=Q" style promotion suffix and "+" or "#".
func Notation(m chess.Move, capture bool, promotion chess.Kind, status chess.CheckStatus) string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if promotion != chess.NoKind {
		sb.WriteByte('=')
		sb.WriteByte(promotion.Letter())
	}
	sb.WriteString(status.Suffix())
	return sb.String()
}
