package tui

import (
	"testing"
	"time"

	"github.com/Haniyya/moonar-lander/internal/core"
)

func TestHeldTrackerPressAndExpiry(t *testing.T) {
	h := NewHeldTracker(100 * time.Millisecond)
	now := time.Now()

	h.Press(core.ActionThrust, now)

	if !h.Held(core.ActionThrust, now.Add(50*time.Millisecond)) {
		t.Error("Action should count as held inside the window")
	}
	if h.Held(core.ActionThrust, now.Add(150*time.Millisecond)) {
		t.Error("Action should expire after the window")
	}
	if h.Held(core.ActionLeft, now) {
		t.Error("Unpressed action should not count as held")
	}
}

func TestHeldTrackerRefresh(t *testing.T) {
	h := NewHeldTracker(100 * time.Millisecond)
	now := time.Now()

	// Autorepeat events keep pushing the deadline out.
	h.Press(core.ActionLeft, now)
	h.Press(core.ActionLeft, now.Add(80*time.Millisecond))

	if !h.Held(core.ActionLeft, now.Add(150*time.Millisecond)) {
		t.Error("Refreshed action should still be held past the original deadline")
	}
}

func TestHeldTrackerFrame(t *testing.T) {
	h := NewHeldTracker(100 * time.Millisecond)
	now := time.Now()

	h.Press(core.ActionThrust, now)
	h.Press(core.ActionLeft, now.Add(-200*time.Millisecond)) // already expired

	frame := h.Frame(now.Add(10 * time.Millisecond))

	if !frame.Has(core.ActionThrust) {
		t.Error("Frame should contain the live action")
	}
	if frame.Has(core.ActionLeft) {
		t.Error("Frame should drop the expired action")
	}

	// Expired entries are pruned, not just skipped.
	if h.Held(core.ActionLeft, now) {
		t.Error("Expired action should be forgotten")
	}
}

func TestHeldTrackerClear(t *testing.T) {
	h := NewHeldTracker(time.Second)
	now := time.Now()

	h.Press(core.ActionUp, now)
	h.Press(core.ActionThrust, now)
	h.Clear()

	if h.Held(core.ActionUp, now) || h.Held(core.ActionThrust, now) {
		t.Error("Clear() should forget all held actions")
	}
}

func TestHeldTrackerDefaultWindow(t *testing.T) {
	h := NewHeldTracker(0)
	now := time.Now()

	h.Press(core.ActionRight, now)
	if !h.Held(core.ActionRight, now.Add(defaultHoldWindow-time.Millisecond)) {
		t.Error("Zero window should select the default hold window")
	}
	if h.Held(core.ActionRight, now.Add(defaultHoldWindow+time.Millisecond)) {
		t.Error("Default window should still expire")
	}
}
