package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 4, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 3, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if !tiny.Empty() {
		t.Errorf("Inset larger than rect should be empty, got %+v", tiny)
	}
}

func TestGridLayout(t *testing.T) {
	cells := GridLayout(NewRect(0, 0, 32, 11), 3, 3, 1)
	if len(cells) != 9 {
		t.Fatalf("expected 9 cells, got %d", len(cells))
	}

	// 32 wide: (32-2)/3 = 10 per cell, 11 high: (11-2)/3 = 3 per cell
	for i, c := range cells {
		if c.W != 10 || c.H != 3 {
			t.Errorf("cell %d has size %dx%d, expected 10x3", i, c.W, c.H)
		}
	}

	// Row-major order
	if cells[1].X <= cells[0].X || cells[1].Y != cells[0].Y {
		t.Errorf("cell 1 should be right of cell 0: %+v %+v", cells[0], cells[1])
	}
	if cells[3].Y <= cells[0].Y || cells[3].X != cells[0].X {
		t.Errorf("cell 3 should be below cell 0: %+v %+v", cells[0], cells[3])
	}

	// No cell overlaps the next one in its row
	for i := 0; i+1 < len(cells); i++ {
		if i%3 == 2 {
			continue
		}
		if cells[i].Right() > cells[i+1].X {
			t.Errorf("cells %d and %d overlap", i, i+1)
		}
	}
}

func TestGridLayoutTooSmall(t *testing.T) {
	if cells := GridLayout(NewRect(0, 0, 3, 3), 3, 3, 1); cells != nil {
		t.Errorf("expected nil layout for tiny area, got %v", cells)
	}
	if cells := GridLayout(NewRect(0, 0, 30, 30), 0, 3, 1); cells != nil {
		t.Errorf("expected nil layout for zero columns, got %v", cells)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %v, expected 0.25", got)
	}
}
