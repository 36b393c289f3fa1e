package core

// Orientation is the rotation state of the falling piece. The piece is a
// triangle of three balls with exactly two orientations.
type Orientation int

const (
	// PointDown: bottom ball at the anchor, two balls above it.
	PointDown Orientation = iota
	// PointUp: top ball above the anchor, two balls beside it.
	PointUp
)

// BallOffset is a ball's position relative to the piece anchor, in
// grid-column/row units. Horizontal offsets are half-cell multiples because
// adjacent rows are shifted by half a cell.
type BallOffset struct {
	DX, DY float64
}

// shapeOffsets defines ball positions for each orientation. Ball order is
// significant: rotation permutes colors across these slots.
var shapeOffsets = [2][3]BallOffset{
	PointDown: {{0, 0}, {-0.5, -1}, {0.5, -1}},
	PointUp:   {{0, -1}, {-0.5, 0}, {0.5, 0}},
}

// RotationDir selects the rotation direction.
type RotationDir int

const (
	RotateCW RotationDir = iota
	RotateCCW
)

// Piece is the currently controllable falling piece. Position is
// continuous; collision is evaluated against the cells produced by
// CellForPosition. At most one piece exists at a time.
type Piece struct {
	X, Y        float64
	Orientation Orientation
	Colors      [3]Cell
}

// NewPiece creates a point-down piece at the given anchor position.
func NewPiece(x, y float64, colors [3]Cell) *Piece {
	return &Piece{X: x, Y: y, Orientation: PointDown, Colors: colors}
}

// Offsets returns the ball offsets for the piece's current orientation.
func (p *Piece) Offsets() [3]BallOffset {
	return shapeOffsets[p.Orientation]
}

// CellsAt returns the grid cells the piece's balls would occupy with its
// anchor at (x, y). This is the single shared mapping used by movement,
// hard drop, rotation and locking.
func (p *Piece) CellsAt(x, y float64) [3]CellPos {
	offsets := p.Offsets()
	var cells [3]CellPos
	for i, off := range offsets {
		cells[i] = CellForPosition(x+off.DX, y+off.DY)
	}
	return cells
}

// Cells returns the grid cells currently occupied by the piece's balls,
// index-aligned with Colors.
func (p *Piece) Cells() [3]CellPos {
	return p.CellsAt(p.X, p.Y)
}

// MoveResult reports the outcome of a movement attempt.
type MoveResult int

const (
	// MoveApplied: the position was updated, possibly only on one axis.
	// A fully blocked horizontal step also reports MoveApplied: the piece
	// simply stays put.
	MoveApplied MoveResult = iota
	// MoveLocked: a downward step was blocked and no nudge resolved it.
	// The piece must lock at its current (unchanged) position.
	MoveLocked
)

// Move attempts a relative move. The horizontal component is tested in
// isolation first: if it collides, x stays unchanged (no sliding through
// walls). The vertical component is then tested against the possibly
// updated x.
//
// A blocked downward step first tries a half-cell nudge to either side
// combined with the same vertical step. Row parity changes the effective
// horizontal footprint of a falling piece, which can produce spurious wall
// collisions during a straight fall; the nudge compensates. If neither
// nudge resolves the collision, the result is MoveLocked and the failed
// vertical step is not applied.
func (p *Piece) Move(g *Grid, dx, dy float64) MoveResult {
	if dx != 0 && !g.blocked(p.CellsAt(p.X+dx, p.Y)) {
		p.X += dx
	}
	if dy == 0 {
		return MoveApplied
	}
	if !g.blocked(p.CellsAt(p.X, p.Y+dy)) {
		p.Y += dy
		return MoveApplied
	}
	if dy > 0 {
		for _, nudge := range [2]float64{-0.5, 0.5} {
			if !g.blocked(p.CellsAt(p.X+nudge, p.Y+dy)) {
				p.X += nudge
				p.Y += dy
				return MoveApplied
			}
		}
		return MoveLocked
	}
	return MoveApplied
}

// HardDrop advances the piece straight down until the next step would
// collide. Unlike Move, it deliberately performs no wall nudge, so next to
// a wall it may halt one row earlier than a soft drop would in rare parity
// cases. That asymmetry is intended behavior, not an oversight.
func (p *Piece) HardDrop(g *Grid) {
	for !g.blocked(p.CellsAt(p.X, p.Y+1)) {
		p.Y++
	}
}

// Rotate toggles the orientation and remaps ball colors to their new
// slots. If the new shape collides at the current x, a wall kick of -0.5
// then +0.5 is attempted. If both still collide the rotation is rejected
// and the piece is unchanged. Returns whether the rotation was applied.
func (p *Piece) Rotate(g *Grid, dir RotationDir) bool {
	next := *p
	if p.Orientation == PointDown {
		next.Orientation = PointUp
	} else {
		next.Orientation = PointDown
	}
	next.Colors = rotatedColors(p.Orientation, dir, p.Colors)

	for _, kick := range [3]float64{0, -0.5, 0.5} {
		if !g.blocked(next.CellsAt(next.X+kick, next.Y)) {
			next.X += kick
			*p = next
			return true
		}
	}
	return false
}

// rotatedColors applies the fixed 60-degree-step color permutation for a
// rotation out of the given orientation. Each permutation is a single swap,
// so rotating CW then CCW (or vice versa) restores the original colors.
func rotatedColors(from Orientation, dir RotationDir, c [3]Cell) [3]Cell {
	swap01 := [3]Cell{c[1], c[0], c[2]}
	swap02 := [3]Cell{c[2], c[1], c[0]}

	if from == PointDown {
		if dir == RotateCW {
			return swap01
		}
		return swap02
	}
	if dir == RotateCW {
		return swap02
	}
	return swap01
}
