package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestVec2AddScale(t *testing.T) {
	v := NewVec2(3, -4).Add(NewVec2(1, 2))
	if !vecNear(v, NewVec2(4, -2)) {
		t.Errorf("Add() = %v, expected (4, -2)", v)
	}

	s := NewVec2(3, -4).Scale(2)
	if !vecNear(s, NewVec2(6, -8)) {
		t.Errorf("Scale() = %v, expected (6, -8)", s)
	}

	z := NewVec2(3, -4).Scale(0)
	if !vecNear(z, NewVec2(0, 0)) {
		t.Errorf("Scale(0) = %v, expected (0, 0)", z)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		rad      float64
		expected Vec2
	}{
		{
			name:     "zero rotation",
			v:        NewVec2(1, 0),
			rad:      0,
			expected: NewVec2(1, 0),
		},
		{
			name:     "quarter turn points up on screen",
			v:        NewVec2(1, 0),
			rad:      math.Pi / 2,
			expected: NewVec2(0, -1),
		},
		{
			name:     "half turn",
			v:        NewVec2(1, 0),
			rad:      math.Pi,
			expected: NewVec2(-1, 0),
		},
		{
			name:     "three-quarter turn points down",
			v:        NewVec2(1, 0),
			rad:      3 * math.Pi / 2,
			expected: NewVec2(0, 1),
		},
		{
			name:     "full turn",
			v:        NewVec2(2, 3),
			rad:      2 * math.Pi,
			expected: NewVec2(2, 3),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.v.Rotate(tc.rad)
			if !vecNear(result, tc.expected) {
				t.Errorf("Rotate(%f) = %v, expected %v", tc.rad, result, tc.expected)
			}
		})
	}
}

func TestVec2RotatePreservesLength(t *testing.T) {
	v := NewVec2(3, 4)
	for _, rad := range []float64{0.1, 1.0, 2.5, -1.3} {
		r := v.Rotate(rad)
		if math.Abs(r.Len()-5) > epsilon {
			t.Errorf("Rotate(%f) changed length: got %f, expected 5", rad, r.Len())
		}
	}
}

func TestVec2Len(t *testing.T) {
	if NewVec2(3, 4).Len() != 5 {
		t.Errorf("Len() of (3,4) = %f, expected 5", NewVec2(3, 4).Len())
	}
	if NewVec2(0, 0).Len() != 0 {
		t.Error("Len() of zero vector should be 0")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
