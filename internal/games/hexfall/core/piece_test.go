package core

import "testing"

func TestPieceShapes(t *testing.T) {
	down := NewPiece(4.5, 10, [3]Cell{0, 1, 2})
	if down.Orientation != PointDown {
		t.Fatal("new piece should spawn point-down")
	}

	offsets := down.Offsets()
	if offsets != [3]BallOffset{{0, 0}, {-0.5, -1}, {0.5, -1}} {
		t.Errorf("point-down offsets = %v", offsets)
	}

	down.Orientation = PointUp
	offsets = down.Offsets()
	if offsets != [3]BallOffset{{0, -1}, {-0.5, 0}, {0.5, 0}} {
		t.Errorf("point-up offsets = %v", offsets)
	}
}

func TestPieceCellsUseSharedMapping(t *testing.T) {
	// Point-down anchor on an even row: anchor cell from floor(x), top
	// balls land on the odd row above with the half-cell shift applied.
	p := NewPiece(3.5, 2, [3]Cell{0, 1, 2})
	cells := p.Cells()

	want := [3]CellPos{{2, 3}, {1, 2}, {1, 3}}
	if cells != want {
		t.Errorf("Cells() = %v, expected %v", cells, want)
	}
}

func TestRotationRoundTrip(t *testing.T) {
	g := NewGrid(16, 4, 9)

	for _, dir := range []RotationDir{RotateCW, RotateCCW} {
		back := RotateCCW
		if dir == RotateCCW {
			back = RotateCW
		}

		for _, start := range []Orientation{PointDown, PointUp} {
			p := NewPiece(4.5, 10, [3]Cell{0, 1, 2})
			p.Orientation = start
			orig := *p

			if !p.Rotate(g, dir) {
				t.Fatalf("rotation %v from %v should succeed mid-board", dir, start)
			}
			if p.Orientation == start {
				t.Errorf("rotation should toggle orientation")
			}
			if !p.Rotate(g, back) {
				t.Fatalf("reverse rotation should succeed")
			}
			if *p != orig {
				t.Errorf("rotate %v then %v from %v: piece = %+v, expected %+v", dir, back, start, *p, orig)
			}
		}
	}
}

func TestRotationColorPermutation(t *testing.T) {
	colors := [3]Cell{0, 1, 2}

	tests := []struct {
		from Orientation
		dir  RotationDir
		want [3]Cell
	}{
		{PointDown, RotateCW, [3]Cell{1, 0, 2}},
		{PointDown, RotateCCW, [3]Cell{2, 1, 0}},
		{PointUp, RotateCW, [3]Cell{2, 1, 0}},
		{PointUp, RotateCCW, [3]Cell{1, 0, 2}},
	}

	for _, tc := range tests {
		got := rotatedColors(tc.from, tc.dir, colors)
		if got != tc.want {
			t.Errorf("rotatedColors(%v, %v) = %v, expected %v", tc.from, tc.dir, got, tc.want)
		}
	}
}

func TestRotationRejectedWhenSurrounded(t *testing.T) {
	g := NewGrid(16, 4, 9)
	p := NewPiece(4.5, 10, [3]Cell{0, 1, 2})

	// Occupy the anchor row around the piece so the point-up shape
	// collides at the current x and at both wall-kick offsets.
	for col := 0; col < g.Cols(); col++ {
		if col != 4 {
			g.Set(10, col, 1)
		}
	}

	orig := *p
	if p.Rotate(g, RotateCW) {
		t.Fatal("rotation should be rejected when all kick positions collide")
	}
	if *p != orig {
		t.Error("rejected rotation must leave the piece unchanged")
	}
}

func TestMoveHorizontalBlockedByWall(t *testing.T) {
	g := NewGrid(16, 4, 9)

	// Flush against the left wall on an odd anchor row.
	p := NewPiece(0.5, 11, [3]Cell{0, 1, 2})
	if g.blocked(p.Cells()) {
		t.Fatal("flush-left piece on odd row should be a valid position")
	}

	res := p.Move(g, -0.5, 0)
	if res != MoveApplied {
		t.Errorf("blocked horizontal move should still report MoveApplied")
	}
	if p.X != 0.5 {
		t.Errorf("x = %v after blocked move, expected unchanged 0.5", p.X)
	}
}

func TestMoveRightWall(t *testing.T) {
	g := NewGrid(16, 4, 9)

	// Flush against the right wall on an even anchor row: the anchor maps
	// to the last column while the top balls sit on the shifted odd row.
	p := NewPiece(8.5, 10, [3]Cell{0, 1, 2})
	if g.blocked(p.Cells()) {
		t.Fatal("flush-right piece on even row should be a valid position")
	}

	p.Move(g, 0.5, 0)
	if p.X != 8.5 {
		t.Errorf("x = %v after blocked move into right wall, expected 8.5", p.X)
	}
}

func TestMoveDownNudgesAtWall(t *testing.T) {
	g := NewGrid(16, 4, 9)

	// A flush-left piece with an odd anchor row: one row down the anchor
	// lands on an even row where x=0.5 still maps in-bounds, but the
	// top-left ball at x=0.0 lands on an odd row and maps to column -1.
	// A +0.5 nudge resolves the parity collision and the fall continues.
	p := NewPiece(0.5, 11, [3]Cell{0, 1, 2})

	res := p.Move(g, 0, 1)
	if res != MoveApplied {
		t.Fatalf("downward move at wall should be resolved by nudge, got lock")
	}
	if p.Y != 12 {
		t.Errorf("y = %v, expected 12", p.Y)
	}
	if p.X != 1.0 {
		t.Errorf("x = %v, expected nudge to 1.0", p.X)
	}
}

func TestMoveLocksOnFloor(t *testing.T) {
	g := NewGrid(16, 4, 9)
	p := NewPiece(4.5, 10, [3]Cell{0, 1, 2})

	p.HardDrop(g)
	prevX, prevY := p.X, p.Y

	if res := p.Move(g, 0, 1); res != MoveLocked {
		t.Fatalf("move below the floor should lock, got %v", res)
	}
	if p.X != prevX || p.Y != prevY {
		t.Error("locking move must not change the piece position")
	}
}

func TestHardDropReachesFloor(t *testing.T) {
	g := NewGrid(16, 4, 9)
	p := NewPiece(4.5, 2, [3]Cell{0, 1, 2})

	p.HardDrop(g)

	cells := p.Cells()
	bottom := cells[0]
	if bottom.Row != g.Rows()-1 {
		t.Errorf("hard drop anchor row = %d, expected %d", bottom.Row, g.Rows()-1)
	}
}

func TestHardDropStopsOnStack(t *testing.T) {
	g := NewGrid(16, 4, 9)

	// A settled ball in the anchor's landing column stops the drop early.
	g.Set(19, 4, 3)

	p := NewPiece(4.5, 2, [3]Cell{0, 1, 2})
	p.HardDrop(g)

	if g.blocked(p.Cells()) {
		t.Error("hard drop must stop at a collision-free position")
	}
	anchor := p.Cells()[0]
	if anchor.Row >= 19 {
		t.Errorf("anchor row = %d, expected above the settled ball", anchor.Row)
	}
}
