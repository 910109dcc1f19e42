package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrUnknownCommand", ErrUnknownCommand, ErrUnknownCommand},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrPromotionPending", ErrPromotionPending, ErrPromotionPending},
		{"ErrNoPromotionPending", ErrNoPromotionPending, ErrNoPromotionPending},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies the engine's two error kinds never match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrInvalidSquare) || errors.Is(ErrInvalidSquare, ErrIllegalMove) {
		t.Error("ErrIllegalMove and ErrInvalidSquare must be distinct")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				MoveText: "e1g1",
				Side:     "White",
				PlyNum:   12,
				Reason:   "move leaves your king in check",
			},
			contains: []string{"ply 12", "e1g1", "white", "king in check", "illegal move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrIllegalMove,
			},
			contains: []string{"illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		MoveText: "d8h4",
		Side:     "Black",
		Reason:   "piece cannot move like that",
	}

	wrapped := fmt.Errorf("playing move: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.MoveText != "d8h4" {
		t.Errorf("extracted.MoveText = %q, want %q", extracted.MoveText, "d8h4")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidSquare,
		Input:    "z9",
		Expected: "file a-h and rank 1-8",
	}

	msg := err.Error()
	if !containsIgnoreCase(msg, "z9") {
		t.Errorf("ParseError.Error() should contain the input, got %q", msg)
	}
	if !containsIgnoreCase(msg, "expected file a-h") {
		t.Errorf("ParseError.Error() should contain the expectation, got %q", msg)
	}
	if !errors.Is(err, ErrInvalidSquare) {
		t.Error("errors.Is(parseErr, ErrInvalidSquare) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidSquare, "parsing move token")

	if !errors.Is(wrapped, ErrInvalidSquare) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing move token") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of session %s", 15, "abc")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
