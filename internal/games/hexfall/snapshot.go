package hexfall

import "github.com/akulikov/hexfall/internal/games/hexfall/core"

// Snapshot captures the observable game state for determinism testing
// and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Phase       string
	Paused      bool
	HasPiece    bool
	PieceX      float64
	PieceY      float64
	PieceUp     bool
	Colors      [3]core.Cell
	Next        [3]core.Cell
	BallsOnGrid int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Score:       g.engine.Score(),
		Phase:       g.engine.Phase().String(),
		Paused:      g.paused,
		Next:        g.engine.NextColors(),
		BallsOnGrid: g.engine.Grid().OccupiedCount(),
	}
	if p, ok := g.engine.ActivePiece(); ok {
		s.HasPiece = true
		s.PieceX = p.X
		s.PieceY = p.Y
		s.PieceUp = p.Orientation == core.PointUp
		s.Colors = p.Colors
	}
	return s
}
