package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestInputState_MovementTimeout(t *testing.T) {
	var s InputState
	s.Press(-1)

	for i := 0; i < MovementTimeout; i++ {
		c := s.Control()
		if c.Move != -1 {
			t.Fatalf("tick %d: expected Move=-1, got %f", i, c.Move)
		}
	}

	c := s.Control()
	if c.Move != 0 {
		t.Errorf("expected movement to stop after timeout, got %f", c.Move)
	}
}

func TestInputState_PressResetsTimeout(t *testing.T) {
	var s InputState
	s.Press(1)
	for i := 0; i < MovementTimeout-1; i++ {
		s.Control()
	}

	s.Press(1)
	for i := 0; i < MovementTimeout; i++ {
		c := s.Control()
		if c.Move != 1 {
			t.Fatalf("tick %d after re-press: expected Move=1, got %f", i, c.Move)
		}
	}
}

func TestLeftPaddleKey(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		single   bool
		expected float64
		ok       bool
	}{
		{"w moves up", tcell.KeyRune, 'w', false, -1, true},
		{"S moves down", tcell.KeyRune, 'S', false, 1, true},
		{"arrow up in single", tcell.KeyUp, 0, true, -1, true},
		{"arrow down in single", tcell.KeyDown, 0, true, 1, true},
		{"arrow up reserved in multi", tcell.KeyUp, 0, false, 0, false},
		{"unrelated key", tcell.KeyRune, 'z', true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, ok := LeftPaddleKey(tt.key, tt.r, tt.single)
			if ok != tt.ok || move != tt.expected {
				t.Errorf("expected (%f,%v), got (%f,%v)", tt.expected, tt.ok, move, ok)
			}
		})
	}
}

func TestRightPaddleKey(t *testing.T) {
	if move, ok := RightPaddleKey(tcell.KeyUp); !ok || move != -1 {
		t.Errorf("expected (-1,true), got (%f,%v)", move, ok)
	}
	if move, ok := RightPaddleKey(tcell.KeyDown); !ok || move != 1 {
		t.Errorf("expected (1,true), got (%f,%v)", move, ok)
	}
	if _, ok := RightPaddleKey(tcell.KeyLeft); ok {
		t.Errorf("expected no mapping for unrelated key")
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Errorf("escape should quit")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Errorf("ctrl-c should quit")
	}
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Errorf("q should quit")
	}
	if IsQuitKey(tcell.KeyRune, 'p') {
		t.Errorf("p should not quit")
	}
}
