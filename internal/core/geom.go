// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a cell coordinate on the screen.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// GridLayout places Cols x Rows equally sized cells starting at Origin,
// separated by Gap columns horizontally and one row vertically.
type GridLayout struct {
	Origin Point
	Cols   int
	Rows   int
	CellW  int
	CellH  int
	Gap    int
}

// CellRect returns the rectangle of the cell at index i (row-major).
func (g GridLayout) CellRect(i int) Rect {
	col := i % g.Cols
	row := i / g.Cols
	return Rect{
		X: g.Origin.X + col*(g.CellW+g.Gap),
		Y: g.Origin.Y + row*(g.CellH+1),
		W: g.CellW,
		H: g.CellH,
	}
}

// Bounds returns the rectangle covering the whole grid.
func (g GridLayout) Bounds() Rect {
	return Rect{
		X: g.Origin.X,
		Y: g.Origin.Y,
		W: g.Cols*g.CellW + (g.Cols-1)*g.Gap,
		H: g.Rows*g.CellH + (g.Rows - 1),
	}
}

// IndexAt returns the cell index under (x, y) for a grid holding count cells.
// Gaps between cells belong to no cell.
func (g GridLayout) IndexAt(x, y, count int) (int, bool) {
	if g.Cols <= 0 {
		return 0, false
	}
	for i := 0; i < count; i++ {
		if g.CellRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
