package core

import "math/rand"

// BitSource supplies random bits for gravity tie-breaking. Injecting it
// keeps the engine deterministic under a fixed seed in tests while
// production wires a time-seeded generator.
type BitSource interface {
	Bit() bool
}

type randBits struct {
	rng *rand.Rand
}

// NewRandBits returns a BitSource backed by a seeded PRNG.
func NewRandBits(seed int64) BitSource {
	return &randBits{rng: rand.New(rand.NewSource(seed))}
}

// BitsFromRand returns a BitSource drawing from an existing generator.
func BitsFromRand(rng *rand.Rand) BitSource {
	return &randBits{rng: rng}
}

func (r *randBits) Bit() bool {
	return r.rng.Intn(2) == 1
}

// SettleStep applies one pass of per-ball gravity and reports whether any
// ball moved. Rows are scanned from second-to-last up to the top, columns
// left to right. An occupied cell with both bottom neighbors open falls
// into one chosen by the bit source; with one open it falls there; with
// none it stays. Repeated stepping until no movement is the termination
// condition for "fully settled".
//
// A single step never changes the number of occupied cells: every move is
// one removal paired with one insertion.
func SettleStep(g *Grid, bits BitSource) bool {
	moved := false
	for row := g.Rows() - 2; row >= 0; row-- {
		for col := 0; col < g.Cols(); col++ {
			c := g.Get(row, col)
			if c == Empty {
				continue
			}

			below := BottomNeighbors(row, col)
			leftOpen := g.IsEmpty(below[0].Row, below[0].Col)
			rightOpen := g.IsEmpty(below[1].Row, below[1].Col)

			var dst CellPos
			switch {
			case leftOpen && rightOpen:
				if bits.Bit() {
					dst = below[1]
				} else {
					dst = below[0]
				}
			case leftOpen:
				dst = below[0]
			case rightOpen:
				dst = below[1]
			default:
				continue
			}

			g.Set(dst.Row, dst.Col, c)
			g.Set(row, col, Empty)
			moved = true
		}
	}
	return moved
}

// Settle runs settle steps until no ball moves, returning the number of
// steps taken. Useful for headless simulation; the engine itself paces
// steps across ticks so the player can watch balls fall.
func Settle(g *Grid, bits BitSource) int {
	steps := 0
	for SettleStep(g, bits) {
		steps++
	}
	return steps
}
