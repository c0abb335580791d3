package core

import "testing"

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
			name:     "adjacent edges do not overlap",
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects = %v, expected %v", got, tt.expected)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("reverse Intersects = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("right/bottom edges are exclusive")
	}
	if r.Contains(1, 4) {
		t.Error("point left of rect should not be contained")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5,0,1) = %f", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1,0,1) = %f", got)
	}
	if got := ClampF(1.7, 0, 1); got != 1 {
		t.Errorf("ClampF(1.7,0,1) = %f", got)
	}
}

func TestLerpF(t *testing.T) {
	if got := LerpF(0, 10, 0.5); got != 5 {
		t.Errorf("LerpF(0,10,0.5) = %f", got)
	}
	if got := LerpF(2, 2, 0.9); got != 2 {
		t.Errorf("LerpF on equal endpoints = %f", got)
	}
	if got := LerpF(0, 10, 0); got != 0 {
		t.Errorf("LerpF with t=0 = %f", got)
	}
}
