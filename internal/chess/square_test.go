package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/console-chess-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text string
		want Square
	}{
		{"a1", Square{0, 0}},
		{"e2", Square{4, 1}},
		{"E2", Square{4, 1}},
		{"h8", Square{7, 7}},
		{"d5", Square{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, text := range []string{"", "e", "z9", "i1", "a0", "a9", "e22", "11"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseSquare(text)
			if !errors.Is(err, chesserrors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", text, err)
			}
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for _, s := range AllSquares() {
		got, err := ParseSquare(s.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseSquare(%v.String()) = %+v; want %+v", s, got, s)
		}
	}
}

func TestNewSquare(t *testing.T) {
	s, err := NewSquare(3, 3)
	if err != nil {
		t.Fatalf("NewSquare(3, 3) error: %v", err)
	}
	if s != (Square{File: 3, Rank: 3}) {
		t.Errorf("NewSquare(3, 3) = %+v", s)
	}

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, err := NewSquare(c[0], c[1]); !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("NewSquare(%d, %d) error = %v; want ErrInvalidSquare", c[0], c[1], err)
		}
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("E2e4")
	if err != nil {
		t.Fatalf("ParseMove error: %v", err)
	}
	if m.String() != "e2e4" {
		t.Errorf("ParseMove(E2e4).String() = %q; want e2e4", m.String())
	}

	for _, token := range []string{"e2e", "e2e45", "e2x4", "j2e4", "e9e4"} {
		if _, err := ParseMove(token); !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseMove(%q) error = %v; want ErrInvalidSquare", token, err)
		}
	}
}

func TestCheckStatusSuffix(t *testing.T) {
	if NoCheck.Suffix() != "" || Check.Suffix() != "+" || Checkmate.Suffix() != "#" {
		t.Error("CheckStatus suffixes wrong")
	}
}
