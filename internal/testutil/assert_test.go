package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/console-chess-go/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []string{"e2e3", "e2e4"}, []string{"e2e3", "e2e4"})
	AssertEqual(t, *chess.NewInitialBoard(), *chess.NewInitialBoard(), "initial boards")
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, sentinel, sentinel)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel, "wrapped %s", "sentinel")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertNotContains(t, "hello world", "foo")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestBoardFromPlacements(t *testing.T) {
	board := BoardFromPlacements(t, "Ke1", "Rh1", "ke8", "pd7")

	AssertEqual(t, board.Get(MustSquare(t, "e1")), chess.W(chess.King))
	AssertEqual(t, board.Get(MustSquare(t, "h1")), chess.W(chess.Rook))
	AssertEqual(t, board.Get(MustSquare(t, "e8")), chess.B(chess.King))
	AssertEqual(t, board.Get(MustSquare(t, "d7")), chess.B(chess.Pawn))
	AssertEqual(t, board.Count(chess.White), 2)
	AssertEqual(t, board.Count(chess.Black), 2)
}

func TestMoveStrings(t *testing.T) {
	AssertEqual(t, MoveStrings(Moves(t, "e2e4", "G1F3")), []string{"e2e4", "g1f3"})
}
