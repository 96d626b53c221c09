package tui

import "github.com/vovakirdan/tui-invaders/internal/core"

// holdTracker emulates key releases. Terminals only report presses (and
// auto-repeats while a key is held), so a direction counts as held until
// no repeat arrived for window ticks or the opposite direction is pressed.
type holdTracker struct {
	window int
	left   int // Ticks left before Left is released; 0 when not held
	right  int
}

func newHoldTracker(window int) *holdTracker {
	if window <= 0 {
		window = 1
	}
	return &holdTracker{window: window}
}

// press records a direction key event into frame.
func (h *holdTracker) press(a core.Action, frame *core.InputFrame) {
	switch a {
	case core.ActionLeft:
		if h.right > 0 {
			h.right = 0
			frame.Unset(core.ActionRight)
			frame.Release(core.ActionRight)
		}
		h.left = h.window
	case core.ActionRight:
		if h.left > 0 {
			h.left = 0
			frame.Unset(core.ActionLeft)
			frame.Release(core.ActionLeft)
		}
		h.right = h.window
	default:
		return
	}
	frame.Set(a)
}

// advance counts down one tick and queues releases for expired keys.
// Call it after the frame has been consumed so releases land in the next one.
func (h *holdTracker) advance(frame *core.InputFrame) {
	if h.left > 0 {
		h.left--
		if h.left == 0 {
			frame.Release(core.ActionLeft)
		}
	}
	if h.right > 0 {
		h.right--
		if h.right == 0 {
			frame.Release(core.ActionRight)
		}
	}
}

func (h *holdTracker) reset() {
	h.left, h.right = 0, 0
}
