package core

// Cell is the content of a grid cell: Empty or a color index.
type Cell int8

// Empty marks an unoccupied cell.
const Empty Cell = -1

// Grid is the fixed-size cell store for settled balls. The top HiddenRows
// rows are a spawn buffer above the visible play area. The grid never
// resizes after creation and is mutated only through Set (by the lock
// operation, the settling engine and the match detector).
type Grid struct {
	cols        int
	visibleRows int
	hiddenRows  int
	cells       []Cell // row-major, length Rows()*cols
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(visibleRows, hiddenRows, cols int) *Grid {
	g := &Grid{
		cols:        cols,
		visibleRows: visibleRows,
		hiddenRows:  hiddenRows,
		cells:       make([]Cell, (visibleRows+hiddenRows)*cols),
	}
	g.Clear()
	return g
}

// Rows returns the total row count including the hidden buffer.
func (g *Grid) Rows() int {
	return g.visibleRows + g.hiddenRows
}

// VisibleRows returns the number of rows in the visible play area.
func (g *Grid) VisibleRows() int {
	return g.visibleRows
}

// HiddenRows returns the number of buffer rows above the visible area.
func (g *Grid) HiddenRows() int {
	return g.hiddenRows
}

// Cols returns the column count.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a valid cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.cols
}

// Get returns the cell at (row, col), or Empty for out-of-bounds reads.
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row*g.cols+col]
}

// Set stores a value at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, v Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = v
}

// IsEmpty reports whether (row, col) is an in-bounds unoccupied cell.
// Out-of-bounds positions report false, so callers treating "empty" as
// "a ball may move here" fail safe at the edges.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row*g.cols+col] == Empty
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// OccupiedCount returns the number of non-empty cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, c := range g.cells {
		if c != Empty {
			count++
		}
	}
	return count
}

// Neighbors returns the in-bounds hex neighbors of (row, col).
func (g *Grid) Neighbors(row, col int) []CellPos {
	return Neighbors(row, col, g.Rows(), g.cols)
}

// blocked reports whether any of the given piece cells collides with the
// floor, a side wall, or a settled ball. Rows above the grid (row < 0) are
// never themselves a collision: a piece may float in the spawn buffer.
func (g *Grid) blocked(cells [3]CellPos) bool {
	for _, c := range cells {
		if c.Row >= g.Rows() {
			return true
		}
		if c.Col < 0 || c.Col >= g.cols {
			return true
		}
		if c.Row >= 0 && g.Get(c.Row, c.Col) != Empty {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		cols:        g.cols,
		visibleRows: g.visibleRows,
		hiddenRows:  g.hiddenRows,
		cells:       cells,
	}
}
