package core

import "testing"

func TestGridDimensions(t *testing.T) {
	g := NewGrid(16, 4, 9)

	if g.Rows() != 20 {
		t.Errorf("Rows() = %d, expected 20", g.Rows())
	}
	if g.VisibleRows() != 16 || g.HiddenRows() != 4 || g.Cols() != 9 {
		t.Errorf("dimensions = %d/%d/%d", g.VisibleRows(), g.HiddenRows(), g.Cols())
	}
}

func TestGridGetSet(t *testing.T) {
	g := NewGrid(16, 4, 9)

	if g.Get(5, 5) != Empty {
		t.Error("fresh grid should be empty")
	}

	g.Set(5, 5, 2)
	if g.Get(5, 5) != 2 {
		t.Errorf("Get(5,5) = %d after Set, expected 2", g.Get(5, 5))
	}
	if g.IsEmpty(5, 5) {
		t.Error("IsEmpty should be false for an occupied cell")
	}

	g.Set(5, 5, Empty)
	if !g.IsEmpty(5, 5) {
		t.Error("IsEmpty should be true after clearing the cell")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(16, 4, 9)

	cases := []CellPos{{-1, 0}, {0, -1}, {20, 0}, {0, 9}, {-5, -5}, {100, 100}}
	for _, c := range cases {
		if g.InBounds(c.Row, c.Col) {
			t.Errorf("InBounds(%v) should be false", c)
		}
		if g.Get(c.Row, c.Col) != Empty {
			t.Errorf("out-of-bounds Get(%v) should return Empty", c)
		}
		// Emptiness queries fail safe: out of bounds is never "free".
		if g.IsEmpty(c.Row, c.Col) {
			t.Errorf("out-of-bounds IsEmpty(%v) should be false", c)
		}
	}

	// Out-of-bounds writes are ignored, not panics.
	g.Set(-1, 0, 3)
	g.Set(20, 8, 3)
	if g.OccupiedCount() != 0 {
		t.Error("out-of-bounds Set should not store anything")
	}
}

func TestGridOccupiedCountAndClear(t *testing.T) {
	g := NewGrid(16, 4, 9)

	g.Set(0, 0, 1)
	g.Set(19, 8, 2)
	g.Set(10, 4, 0)
	if g.OccupiedCount() != 3 {
		t.Errorf("OccupiedCount() = %d, expected 3", g.OccupiedCount())
	}

	g.Clear()
	if g.OccupiedCount() != 0 {
		t.Errorf("OccupiedCount() = %d after Clear, expected 0", g.OccupiedCount())
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid(16, 4, 9)
	g.Set(3, 3, 4)

	c := g.Clone()
	if c.Get(3, 3) != 4 {
		t.Error("clone should copy cell contents")
	}

	c.Set(3, 3, Empty)
	if g.Get(3, 3) != 4 {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestGridBlocked(t *testing.T) {
	g := NewGrid(16, 4, 9)

	// Floating above the grid is not a collision.
	if g.blocked([3]CellPos{{-1, 2}, {-2, 3}, {-1, 3}}) {
		t.Error("cells above the grid should not block")
	}

	// Below the floor blocks.
	if !g.blocked([3]CellPos{{20, 4}, {19, 4}, {19, 5}}) {
		t.Error("row past the floor should block")
	}

	// Side walls block.
	if !g.blocked([3]CellPos{{5, -1}, {5, 0}, {6, 0}}) {
		t.Error("negative column should block")
	}
	if !g.blocked([3]CellPos{{5, 9}, {5, 8}, {6, 8}}) {
		t.Error("column past the right wall should block")
	}

	// Occupied cells block.
	g.Set(10, 4, 1)
	if !g.blocked([3]CellPos{{10, 4}, {9, 4}, {9, 5}}) {
		t.Error("occupied cell should block")
	}
}
