package session

import "github.com/lgbarn/console-chess-go/internal/chess"

// Outcome says whether and how a game ended.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
	Resignation
	InsufficientMaterial
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Resignation:
		return "resignation"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "in progress"
	}
}

// Result is the state of a game's outcome. Winner is meaningful only
// for Checkmate and Resignation.
type Result struct {
	Outcome Outcome
	Winner  chess.Colour
}

// Over reports whether the game has ended.
func (r Result) Over() bool {
	return r.Outcome != InProgress
}

// Decisive reports whether one side won.
func (r Result) Decisive() bool {
	return r.Outcome == Checkmate || r.Outcome == Resignation
}

// Score returns the result in the usual tag form: "1-0", "0-1", "1/2-1/2"
// or "*" while the game is running.
func (r Result) Score() string {
	switch {
	case !r.Over():
		return "*"
	case !r.Decisive():
		return "1/2-1/2"
	case r.Winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}
