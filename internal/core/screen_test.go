package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorCyan)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected X in cyan", c)
	}

	// Out of bounds writes are silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(100, 0).Rune != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}
	if s.GetCell(2, 1).Color != ColorWhite {
		t.Error("DrawText should apply the color")
	}

	s.DrawText(18, 0, "Hello", ColorDefault) // only "He" fits
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Error("DrawTextCentered: text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' || s.GetCell(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	if got, expected := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, expected 8x4, got %dx%d", s.Width(), s.Height())
	}
	if got := s.Row(0); got != strings.Repeat(" ", 8) {
		t.Errorf("resize should clear the buffer, row 0 = %q", got)
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("negative width should clamp to 0, got %d", s.Width())
	}
}
