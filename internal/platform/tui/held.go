package tui

import (
	"time"

	"github.com/Haniyya/moonar-lander/internal/core"
)

// defaultHoldWindow is how long a directional key counts as held after its
// last press event. Terminals report presses (and autorepeats) but never
// releases, so the window must outlast the terminal's initial autorepeat
// delay or a held key flickers off before repeating starts.
const defaultHoldWindow = 500 * time.Millisecond

// HeldTracker derives held-key state from terminal key events. Each press
// refreshes a per-action deadline; an action counts as held until its
// deadline lapses.
type HeldTracker struct {
	deadlines map[core.Action]time.Time
	window    time.Duration
}

// NewHeldTracker creates a tracker with the given hold window.
// A zero window selects the default.
func NewHeldTracker(window time.Duration) *HeldTracker {
	if window <= 0 {
		window = defaultHoldWindow
	}
	return &HeldTracker{
		deadlines: make(map[core.Action]time.Time),
		window:    window,
	}
}

// Press records a key event for an action at the given time.
func (h *HeldTracker) Press(a core.Action, now time.Time) {
	h.deadlines[a] = now.Add(h.window)
}

// Held returns true if the action counts as held at the given time.
func (h *HeldTracker) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.deadlines[a]
	return ok && now.Before(deadline)
}

// Frame builds the held-input frame for a simulation step, dropping
// expired actions.
func (h *HeldTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, deadline := range h.deadlines {
		if now.Before(deadline) {
			frame.Set(a)
		} else {
			delete(h.deadlines, a)
		}
	}
	return frame
}

// Clear forgets all held actions.
func (h *HeldTracker) Clear() {
	for a := range h.deadlines {
		delete(h.deadlines, a)
	}
}
