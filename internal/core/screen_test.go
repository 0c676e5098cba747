package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Cleared cells are spaces
	if s.Get(0, 0) != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", s.Get(0, 0))
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '@', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected '@' in red", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	// Out-of-bounds reads return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
	if s.Get(100, 100) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'X', ColorGreen)

	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("After Clear(), GetCell(2, 2) = %+v, expected default space", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("After Resize: %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrink below the marker
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("Content outside new bounds should be gone")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "hello")

	for i, r := range "hello" {
		if s.Get(2+i, 1) != r {
			t.Errorf("Get(%d, 1) = %q, expected %q", 2+i, s.Get(2+i, 1), r)
		}
	}

	// Clipped text should not panic
	s.DrawText(18, 1, "world")
	if s.Get(18, 1) != 'w' || s.Get(19, 1) != 'o' {
		t.Error("Text should draw up to the right edge")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(0, 4, 10, '=')

	for x := 0; x < 10; x++ {
		if s.Get(x, 4) != '=' {
			t.Errorf("Get(%d, 4) = %q, expected '='", x, s.Get(x, 4))
		}
	}
}

func TestScreenDrawLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawLine(0, 0, 9, 9, '*', ColorDefault)

	// Endpoints are included
	if s.Get(0, 0) != '*' {
		t.Error("Line start point not drawn")
	}
	if s.Get(9, 9) != '*' {
		t.Error("Line end point not drawn")
	}

	// Diagonal passes through the middle
	if s.Get(5, 5) != '*' {
		t.Error("Diagonal line should pass through (5, 5)")
	}
}

func TestScreenDrawLineHorizontalVertical(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawLine(1, 3, 8, 3, '-', ColorDefault)
	for x := 1; x <= 8; x++ {
		if s.Get(x, 3) != '-' {
			t.Errorf("Horizontal line missing at (%d, 3)", x)
		}
	}

	s.DrawLine(5, 1, 5, 8, '|', ColorDefault)
	for y := 1; y <= 8; y++ {
		if s.Get(5, y) != '|' {
			t.Errorf("Vertical line missing at (5, %d)", y)
		}
	}
}

func TestScreenDrawPolyline(t *testing.T) {
	s := NewScreen(20, 10)
	points := []Vec2{
		NewVec2(0, 5),
		NewVec2(5, 2),
		NewVec2(10, 5),
	}
	s.DrawPolyline(points, 0, 0, '#', ColorDefault)

	if s.Get(0, 5) != '#' {
		t.Error("Polyline should include first point")
	}
	if s.Get(5, 2) != '#' {
		t.Error("Polyline should include middle point")
	}
	if s.Get(10, 5) != '#' {
		t.Error("Polyline should include last point")
	}
}

func TestScreenDrawPolygonClosed(t *testing.T) {
	s := NewScreen(20, 20)
	triangle := []Vec2{
		NewVec2(5, 0),
		NewVec2(-5, 4),
		NewVec2(-5, -4),
	}
	s.DrawPolygon(triangle, NewVec2(10, 10), 0, '*', ColorDefault)

	// Vertices land at (15,10), (5,14), (5,6)
	if s.Get(15, 10) != '*' {
		t.Error("Polygon nose vertex not drawn")
	}
	if s.Get(5, 14) != '*' {
		t.Error("Polygon lower tail vertex not drawn")
	}
	if s.Get(5, 6) != '*' {
		t.Error("Polygon upper tail vertex not drawn")
	}
	// The closing edge between the tail vertices is vertical at x=5
	if s.Get(5, 10) != '*' {
		t.Error("Polygon outline should be closed")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Box top corners not drawn")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box bottom corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("First line = %q, expected 'a  '", lines[0])
	}
	if lines[1] != "  b" {
		t.Errorf("Second line = %q, expected '  b'", lines[1])
	}
}
