// Package errors provides sentinel errors and error types for the chess engine
// and its console shell. It defines common error conditions and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates malformed algebraic text or an off-board coordinate.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCommand indicates console input that is not a command or move.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidPromotion indicates a promotion choice other than Q, R, B or N.
	ErrInvalidPromotion = errors.New("invalid promotion choice")

	// ErrPromotionPending indicates a move was attempted before the pending
	// promotion was resolved.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotionPending indicates a promotion choice with no pawn waiting.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrGameOver indicates a move or command after the game has finished.
	ErrGameOver = errors.New("game over")
)

// MoveError wraps errors with move context, including the ply, the side to
// move and the reason the move was refused. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move in coordinate notation (e.g. "e2e4")
	Side     string // The side that attempted the move
	PlyNum   int    // Ply number where the error occurred (0 if not applicable)
	Reason   string // Which rule refused the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		if e.Side != "" {
			parts = append(parts, fmt.Sprintf("move %s by %s", e.MoveText, e.Side))
		} else {
			parts = append(parts, fmt.Sprintf("move %s", e.MoveText))
		}
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to read user input such as a square,
// a move token or a promotion choice.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text that failed to parse
	Expected string // What was expected
}

// Error returns a formatted error message with the offending input.
func (e *ParseError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%q", e.Input))
	if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
