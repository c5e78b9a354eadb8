package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, expected '#'", got)
	}

	s.SetColored(4, 2, '@', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,2) = %+v, expected '@' in red", cell)
	}

	// Out of bounds is silently ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'x', ColorGreen)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(2, 1, '*')

	s.Resize(8, 5)
	if s.Width() != 8 || s.Height() != 5 {
		t.Errorf("Resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 1); got != '*' {
		t.Errorf("Resize should preserve content, got %q", got)
	}

	s.Resize(3, 2)
	if got := s.Get(2, 1); got != '*' {
		t.Errorf("shrinking should keep in-bounds content, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText should place characters sequentially")
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "long text")
	if s.Get(9, 1) != 'o' {
		t.Error("DrawText should clip at screen edge")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "abcde")

	if got := s.Row(0); got != "abcde" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(7); got != "     " {
		t.Errorf("out-of-bounds Row = %q, expected blanks", got)
	}
}
