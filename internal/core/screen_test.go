package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColor(1, 1, '^', ColorBrightGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '^' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected {'^' BrightGreen}", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, 'v')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Set should use default color, got %v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColor(0, 0, 'x', ColorRed)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left cell %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place runes, row = %q", s.Row(1))
	}

	// Text extending past the edge is clipped
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Errorf("clipped text wrong, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "ab")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' {
		t.Errorf("centered text misplaced, row = %q", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, '#')

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("Resize dims = %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != '#' {
		t.Error("Resize lost preserved content")
	}

	// Shrinking drops content outside the new bounds without panicking
	s.Resize(2, 2)
	if s.Get(1, 1) != '#' {
		t.Error("Resize lost content inside new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if lines := strings.Count(s.String(), "\n"); lines != 1 {
		t.Errorf("String() newline count = %d, expected 1", lines)
	}
}
