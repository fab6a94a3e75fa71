package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestGridLayoutCellRect(t *testing.T) {
	g := GridLayout{Origin: Point{X: 2, Y: 3}, Cols: 4, Rows: 2, CellW: 5, CellH: 3, Gap: 1}

	tests := []struct {
		index    int
		expected Rect
	}{
		{0, NewRect(2, 3, 5, 3)},
		{1, NewRect(8, 3, 5, 3)},
		{3, NewRect(20, 3, 5, 3)},
		{4, NewRect(2, 7, 5, 3)},
		{7, NewRect(20, 7, 5, 3)},
	}

	for _, tc := range tests {
		if got := g.CellRect(tc.index); got != tc.expected {
			t.Errorf("CellRect(%d) = %+v, expected %+v", tc.index, got, tc.expected)
		}
	}

	bounds := g.Bounds()
	if bounds.W != 4*5+3 || bounds.H != 2*3+1 {
		t.Errorf("Bounds() = %+v, expected 23x7", bounds)
	}
}

func TestGridLayoutIndexAt(t *testing.T) {
	g := GridLayout{Origin: Point{X: 0, Y: 0}, Cols: 3, Rows: 2, CellW: 4, CellH: 2, Gap: 1}

	tests := []struct {
		name   string
		x, y   int
		index  int
		hasHit bool
	}{
		{"first cell", 0, 0, 0, true},
		{"first cell far corner", 3, 1, 0, true},
		{"horizontal gap", 4, 0, 0, false},
		{"second cell", 5, 1, 1, true},
		{"vertical gap", 0, 2, 0, false},
		{"second row", 11, 4, 5, true},
		{"outside grid", 40, 40, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := g.IndexAt(tc.x, tc.y, 6)
			if ok != tc.hasHit {
				t.Fatalf("IndexAt(%d, %d) hit = %v, expected %v", tc.x, tc.y, ok, tc.hasHit)
			}
			if ok && idx != tc.index {
				t.Errorf("IndexAt(%d, %d) = %d, expected %d", tc.x, tc.y, idx, tc.index)
			}
		})
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
