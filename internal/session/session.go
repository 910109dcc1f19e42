// Package session runs one game between two named players on top of the
// rules engine: turn order, move history, promotion hand-off and the
// final result.
package session

import (
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Report describes a ply the session accepted.
type Report struct {
	Move     chess.Move
	Notation string // Empty while a promotion is pending
	Result   chess.MoveResult

	// PromotionPending is set when the move put a pawn on its last rank;
	// the ply is completed by Session.Promote.
	PromotionPending bool

	// Outcome is the game state after the ply.
	Outcome Result
}

type pendingPromotion struct {
	move   chess.Move
	result chess.MoveResult
}

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	ID string

	board   chess.Board
	turn    chess.Colour
	names   [2]string
	history []string
	pending *pendingPromotion
	result  Result
	logger  *zap.Logger
}

// New starts a game from the standard position with White to move.
// Blank names fall back to "White" and "Black"; a nil logger discards events.
func New(white, black string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if white == "" {
		white = "White"
	}
	if black == "" {
		black = "Black"
	}

	id := uuid.NewString()
	s := &Session{
		ID:     id,
		turn:   chess.White,
		names:  [2]string{white, black},
		logger: logger.With(zap.String("session_id", id)),
	}
	s.board.SetupInitialPosition()

	s.logger.Info("chess session started",
		zap.String("white", white),
		zap.String("black", black),
	)
	return s
}

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// Turn returns the side to move.
func (s *Session) Turn() chess.Colour {
	return s.turn
}

// Name returns the player name for colour.
func (s *Session) Name(colour chess.Colour) string {
	return s.names[colour]
}

// History returns the notation of every completed ply.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Result returns the outcome so far.
func (s *Session) Result() Result {
	return s.result
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.result.Over()
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	return engine.IsKingInCheck(&s.board, s.turn)
}

// PendingPromotion returns the square of a pawn waiting to be promoted.
func (s *Session) PendingPromotion() (chess.Square, bool) {
	if s.pending == nil {
		return chess.Square{}, false
	}
	return s.pending.move.To, true
}

// Play parses a coordinate token such as "e2e4" and plays it.
func (s *Session) Play(token string) (Report, error) {
	m, err := chess.ParseMove(token)
	if err != nil {
		return Report{}, err
	}
	return s.PlayMove(m)
}

// PlayMove plays a move for the side to move. An illegal move returns an
// error wrapping errors.ErrIllegalMove and changes nothing.
func (s *Session) PlayMove(m chess.Move) (Report, error) {
	if err := s.ready(); err != nil {
		return Report{}, err
	}

	result, err := engine.MakeMove(&s.board, m.From, m.To, s.turn)
	if err != nil {
		if me, ok := err.(*errors.MoveError); ok {
			me.PlyNum = len(s.history) + 1
		}
		s.logger.Debug("move rejected",
			zap.String("move", m.String()),
			zap.Stringer("side", s.turn),
			zap.Error(err),
		)
		return Report{}, err
	}

	if engine.IsPromotionPending(&s.board, m.To) {
		s.pending = &pendingPromotion{move: m, result: result}
		return Report{Move: m, Result: result, PromotionPending: true, Outcome: s.result}, nil
	}

	return s.finishPly(m, result, chess.NoKind), nil
}

// CastleMove returns the king move that castles on the given wing for the
// side to move: e1g1, e1c1, e8g8 or e8c8.
func (s *Session) CastleMove(kingside bool) chess.Move {
	rank := s.turn.HomeRank()
	to := 2 // c
	if kingside {
		to = 6 // g
	}
	return chess.Move{
		From: chess.Square{File: 4, Rank: rank},
		To:   chess.Square{File: to, Rank: rank},
	}
}

// Promote completes a ply that left a pawn on its last rank.
func (s *Session) Promote(kind chess.Kind) (Report, error) {
	if s.pending == nil {
		return Report{}, errors.ErrNoPromotionPending
	}
	if !kind.IsPromotionChoice() {
		return Report{}, errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", kind)
	}

	p := s.pending
	s.pending = nil
	engine.Promote(&s.board, p.move.To, kind)

	// The new piece may give check where the pawn did not.
	p.result.GaveCheck = engine.IsKingInCheck(&s.board, s.turn.Opposite())

	s.logger.Info("pawn promoted",
		zap.String("square", p.move.To.String()),
		zap.Stringer("piece", kind),
		zap.Stringer("side", s.turn),
	)
	return s.finishPly(p.move, p.result, kind), nil
}

// Resign ends the game in favour of the side not to move. A pawn waiting
// for promotion becomes a queen and its ply is recorded first.
func (s *Session) Resign() error {
	if s.Over() {
		return errors.ErrGameOver
	}
	if p := s.pending; p != nil {
		s.pending = nil
		engine.Promote(&s.board, p.move.To, chess.Queen)
		status := chess.NoCheck
		if engine.IsKingInCheck(&s.board, s.turn.Opposite()) {
			status = chess.Check
		}
		s.history = append(s.history, Notation(p.move, p.result.WasCapture, chess.Queen, status))
	}
	s.endGame(Result{Outcome: Resignation, Winner: s.turn.Opposite()})
	return nil
}

// Hint lists every legal move for the side to move, sorted.
func (s *Session) Hint() []string {
	return sortedMoves(engine.AllLegalMoves(&s.board, s.turn))
}

// Pip lists the legal moves from one square for the side to move, sorted.
// It is empty for an empty square or an opposing piece.
func (s *Session) Pip(sq chess.Square) []string {
	return sortedMoves(engine.LegalMovesFrom(&s.board, sq, s.turn))
}

func (s *Session) ready() error {
	if s.Over() {
		return errors.ErrGameOver
	}
	if s.pending != nil {
		return errors.ErrPromotionPending
	}
	return nil
}

// finishPly records the ply, checks whether the opponent can continue and
// whether mate is still possible, then passes the turn.
func (s *Session) finishPly(m chess.Move, result chess.MoveResult, promotion chess.Kind) Report {
	opponent := s.turn.Opposite()

	status := chess.NoCheck
	if result.GaveCheck {
		status = chess.Check
	}
	outcome := Result{}
	switch engine.Status(&s.board, opponent) {
	case engine.Checkmate:
		status = chess.Checkmate
		outcome = Result{Outcome: Checkmate, Winner: s.turn}
	case engine.Stalemate:
		outcome = Result{Outcome: Stalemate}
	default:
		if engine.HasInsufficientMaterial(&s.board) {
			outcome = Result{Outcome: InsufficientMaterial}
		}
	}

	notation := Notation(m, result.WasCapture, promotion, status)
	s.history = append(s.history, notation)

	s.logger.Info("move applied",
		zap.Int("ply", len(s.history)),
		zap.String("move", m.String()),
		zap.String("notation", notation),
		zap.Stringer("side", s.turn),
	)

	if outcome.Over() {
		s.endGame(outcome)
	} else {
		s.turn = opponent
	}

	return Report{
		Move:     m,
		Notation: notation,
		Result:   result,
		Outcome:  s.result,
	}
}

func (s *Session) endGame(r Result) {
	s.result = r
	s.logger.Info("game over",
		zap.String("result", r.Score()),
		zap.Stringer("reason", r.Outcome),
		zap.Int("plies", len(s.history)),
	)
}

func sortedMoves(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}
