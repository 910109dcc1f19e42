package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/session"
)

// CheckNotice is printed under the board when the side to move is in check.
const CheckNotice = "! Your King is in check."

// Printer writes everything the shell shows the players.
type Printer struct {
	w       io.Writer
	display *config.DisplayConfig
}

// NewPrinter creates a printer for the given display settings.
func NewPrinter(w io.Writer, display *config.DisplayConfig) *Printer {
	if display == nil {
		display = config.NewDisplayConfig()
	}
	return &Printer{w: w, display: display}
}

// Position draws the board of s followed by the move list and a check
// notice for the side to move.
func (p *Printer) Position(s *session.Session) {
	WriteBoard(p.w, s.Board(), p.display)
	if history := s.History(); p.display.ShowHistory && len(history) > 0 {
		WriteList(p.w, DefaultLineLength, "Moves:", history)
	}
	if p.display.ShowCheck && !s.Over() && s.InCheck() {
		fmt.Fprintln(p.w, CheckNotice)
	}
	fmt.Fprintln(p.w)
}

// Players announces the pairing.
func (p *Printer) Players(s *session.Session) {
	fmt.Fprintf(p.w, "Players: %s (White) vs %s (Black)\n\n",
		s.Name(chess.White), s.Name(chess.Black))
}

// Hint lists every legal move for the side to move.
func (p *Printer) Hint(s *session.Session) {
	name := s.Name(s.Turn())
	moves := s.Hint()
	if len(moves) == 0 {
		fmt.Fprintf(p.w, "No legal moves for %s.\n", name)
		return
	}
	WriteList(p.w, DefaultLineLength, fmt.Sprintf("%s legal moves (%d):", name, len(moves)), moves)
}

// Pip lists the legal moves from one square.
func (p *Printer) Pip(s *session.Session, sq chess.Square) {
	moves := s.Pip(sq)
	if len(moves) == 0 {
		fmt.Fprintf(p.w, "No legal moves from %s for %s.\n", sq, s.Name(s.Turn()))
		return
	}
	WriteList(p.w, DefaultLineLength, fmt.Sprintf("Legal moves from %s:", sq), moves)
}

// Help prints the command summary.
func (p *Printer) Help(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(p.w, line)
	}
}

// Result announces how the game ended.
func (p *Printer) Result(s *session.Session) {
	fmt.Fprintln(p.w, ResultMessage(s.Result(), s.Name))
}

// Message prints a single line.
func (p *Printer) Message(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// ResultMessage describes a result using the players' names.
func ResultMessage(r session.Result, name func(chess.Colour) string) string {
	switch r.Outcome {
	case session.Checkmate:
		return fmt.Sprintf("Checkmate. %s wins! (%s)", name(r.Winner), r.Score())
	case session.Stalemate:
		return fmt.Sprintf("Stalemate. The game is drawn. (%s)", r.Score())
	case session.InsufficientMaterial:
		return fmt.Sprintf("Insufficient material. The game is drawn. (%s)", r.Score())
	case session.Resignation:
		return fmt.Sprintf("%s resigns. %s wins! (%s)", name(r.Winner.Opposite()), name(r.Winner), r.Score())
	default:
		return "Game in progress."
	}
}
