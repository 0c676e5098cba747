package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionThrust) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionThrust)
	if !f.Has(ActionThrust) {
		t.Error("Has() should report a set action")
	}
	if f.Has(ActionLeft) {
		t.Error("Has() should not report unset actions")
	}
}

func TestInputFrameAnyDirection(t *testing.T) {
	f := NewInputFrame()
	if f.AnyDirection() {
		t.Error("Empty frame should have no direction")
	}

	f.Set(ActionThrust)
	if f.AnyDirection() {
		t.Error("Thrust is not a direction")
	}

	f.Set(ActionLeft)
	if !f.AnyDirection() {
		t.Error("AnyDirection() should report a held arrow")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionThrust)

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionThrust) {
		t.Error("Clear() should remove all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	clone.Set(ActionLeft)

	if f.Has(ActionLeft) {
		t.Error("Mutating a clone should not affect the original")
	}
	if !clone.Has(ActionRight) {
		t.Error("Clone should carry the original's actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	// A zero-value frame is usable for reads and writes
	if f.Has(ActionUp) {
		t.Error("Zero-value frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero-value frame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionThrust, "Thrust"},
		{ActionLeft, "Left"},
		{ActionPause, "Pause"},
		{ActionNone, "None"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if tc.action.String() != tc.expected {
			t.Errorf("Action.String() = %q, expected %q", tc.action.String(), tc.expected)
		}
	}
}

func TestFlightOutcomeString(t *testing.T) {
	if FlightLanded.String() != "landed" {
		t.Errorf("FlightLanded.String() = %q", FlightLanded.String())
	}
	if FlightCrashed.String() != "crashed" {
		t.Errorf("FlightCrashed.String() = %q", FlightCrashed.String())
	}
	if FlightAirborne.String() != "airborne" {
		t.Errorf("FlightAirborne.String() = %q", FlightAirborne.String())
	}
}
