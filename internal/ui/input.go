package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/AhmedAllam0/pingpong/internal/game"
)

// MovementTimeout is how many ticks a key press keeps its paddle moving.
// Terminals deliver repeats but no release events, so movement decays
// shortly after the last press (~133ms at 60Hz).
const MovementTimeout = 8

// InputState tracks one paddle's keyboard-driven movement between ticks.
type InputState struct {
	move  float64
	ticks int
}

// Press records a directional key press (-1 up, +1 down).
func (s *InputState) Press(move float64) {
	s.move = move
	s.ticks = MovementTimeout
}

// Control yields this tick's control signal and decays the timeout.
func (s *InputState) Control() game.Control {
	if s.ticks <= 0 {
		return game.Control{}
	}
	s.ticks--
	move := s.move
	if s.ticks == 0 {
		s.move = 0
	}
	return game.Control{Move: move}
}

// LeftPaddleKey maps a key event to the left paddle's movement.
// W/S always drive the left paddle; in single-player the arrow keys do
// too, so either hand position works.
func LeftPaddleKey(key tcell.Key, r rune, singlePlayer bool) (float64, bool) {
	switch key {
	case tcell.KeyUp:
		if singlePlayer {
			return -1, true
		}
	case tcell.KeyDown:
		if singlePlayer {
			return 1, true
		}
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return -1, true
		case 's', 'S':
			return 1, true
		}
	}
	return 0, false
}

// RightPaddleKey maps a key event to the right paddle's movement
// (two-player mode only; the AI drives the right paddle otherwise).
func RightPaddleKey(key tcell.Key) (float64, bool) {
	switch key {
	case tcell.KeyUp:
		return -1, true
	case tcell.KeyDown:
		return 1, true
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	return key == tcell.KeyRune && (r == 'q' || r == 'Q')
}
