package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single cell overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(6, 3) {
		t.Error("right edge should be exclusive")
	}
	if r.Contains(2, 8) {
		t.Error("bottom edge should be exclusive")
	}
	if !r.Contains(5, 7) {
		t.Error("last interior cell should be contained")
	}
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
	if got := a.Dist(Vec2{0, 0}); got != 5 {
		t.Errorf("Dist = %v, expected 5", got)
	}
}

func TestVec2Norm(t *testing.T) {
	n := Vec2{3, 4}.Norm()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Norm length = %v, expected 1", n.Len())
	}

	// Zero vector must not produce NaN
	z := Vec2{}.Norm()
	if z != (Vec2{}) {
		t.Errorf("zero vector Norm = %v, expected zero", z)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("value in range should be unchanged")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("value below range should clamp to min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("value above range should clamp to max")
	}

	if ClampF(0.5, 0, 1) != 0.5 {
		t.Error("float in range should be unchanged")
	}
	if ClampF(-0.5, 0, 1) != 0 {
		t.Error("float below range should clamp to min")
	}
	if ClampF(1.5, 0, 1) != 1 {
		t.Error("float above range should clamp to max")
	}
}
