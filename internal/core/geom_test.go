package core

import "testing"

func TestCardRect(t *testing.T) {
	tests := []struct {
		name                  string
		r                     Rect
		right, bottom, cx, cy int
	}{
		{"card face", NewRect(6, 0, 25, 7), 31, 7, 18, 3},
		{"single cell", NewRect(3, 4, 1, 1), 4, 5, 3, 4},
		{"empty", Rect{}, 0, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.r.Right() != tc.right || tc.r.Bottom() != tc.bottom {
				t.Errorf("edges = %d,%d, want %d,%d", tc.r.Right(), tc.r.Bottom(), tc.right, tc.bottom)
			}
			if x, y := tc.r.Center(); x != tc.cx || y != tc.cy {
				t.Errorf("Center() = %d,%d, want %d,%d", x, y, tc.cx, tc.cy)
			}
		})
	}
}

func TestClampCursor(t *testing.T) {
	// A 7x5 board, row 0 reserved for the status line.
	tests := []struct{ v, lo, hi, want int }{
		{-1, 0, 6, 0},
		{7, 0, 6, 6},
		{3, 0, 6, 3},
		{0, 1, 4, 1},
		{99, 0, 99, 99},
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestManhattanNeighbours(t *testing.T) {
	tests := []struct {
		dx, dy    int
		neighbour bool
	}{
		{1, 0, true},
		{0, -1, true},
		{-1, 1, false},
		{0, 0, false},
		{-2, 0, false},
	}
	for _, tc := range tests {
		if got := Abs(tc.dx)+Abs(tc.dy) == 1; got != tc.neighbour {
			t.Errorf("offset %d,%d: neighbour = %v, want %v", tc.dx, tc.dy, got, tc.neighbour)
		}
	}
}
