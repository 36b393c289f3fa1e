// Package core implements the Hexfall simulation engine: a hexagonal grid
// of colored balls, a falling three-ball piece, per-ball gravity and
// flood-fill match clearing. It contains pure logic with no dependencies on
// the platform layer, so it can be driven headless in tests.
//
// The grid uses brick-like hex packing: odd rows are shifted right by half
// a cell width relative to even rows. Row parity therefore decides which
// six cells are a cell's neighbors and which two cells lie directly below it.
package core

import "math"

// CellPos identifies a grid cell by row and column.
type CellPos struct {
	Row, Col int
}

// Neighbors returns the in-bounds hex neighbors of (row, col) for a grid of
// the given dimensions. A cell has up to six neighbors; edge and corner
// cells have fewer.
func Neighbors(row, col, rows, cols int) []CellPos {
	var candidates [6]CellPos
	if oddRow(row) {
		candidates = [6]CellPos{
			{row - 1, col}, {row - 1, col + 1},
			{row, col - 1}, {row, col + 1},
			{row + 1, col}, {row + 1, col + 1},
		}
	} else {
		candidates = [6]CellPos{
			{row - 1, col - 1}, {row - 1, col},
			{row, col - 1}, {row, col + 1},
			{row + 1, col - 1}, {row + 1, col},
		}
	}

	result := make([]CellPos, 0, 6)
	for _, c := range candidates {
		if c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols {
			result = append(result, c)
		}
	}
	return result
}

// BottomNeighbors returns the two cells directly below (row, col), the ones
// a ball can fall into. Results are not bounds-checked; callers decide
// validity.
func BottomNeighbors(row, col int) [2]CellPos {
	if oddRow(row) {
		return [2]CellPos{{row + 1, col}, {row + 1, col + 1}}
	}
	return [2]CellPos{{row + 1, col - 1}, {row + 1, col}}
}

// CellForPosition maps a continuous position to the cell it occupies.
// The row is the nearest integer to y. Because odd rows are shifted right
// by half a cell, the column bucket shifts by 0.5 on odd rows.
//
// Every collision and locking computation must go through this mapping;
// any divergence produces inconsistent placement.
func CellForPosition(x, y float64) CellPos {
	row := int(math.Round(y))
	var col int
	if oddRow(row) {
		col = int(math.Floor(x - 0.5))
	} else {
		col = int(math.Floor(x))
	}
	return CellPos{Row: row, Col: col}
}

// oddRow reports whether a row index is odd, handling negative rows
// (a piece may float above the grid before its first drop).
func oddRow(row int) bool {
	return row&1 != 0
}
