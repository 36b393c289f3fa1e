package hexfall

import (
	"strings"
	"testing"

	platformcore "github.com/akulikov/hexfall/internal/core"
	"github.com/akulikov/hexfall/internal/games/hexfall/core"
	"github.com/akulikov/hexfall/internal/registry"
)

func testConfig() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig()

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := platformcore.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch {
		case i%97 == 20:
			input.Set(platformcore.ActionLeft)
		case i%97 == 40:
			input.Set(platformcore.ActionRotateCW)
		case i%97 == 60:
			input.Set(platformcore.ActionHardDrop)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionPause)
	g.Step(input)
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.Snapshot()
	input.Clear()
	for i := 0; i < 100; i++ {
		g.Step(input)
	}
	after := g.Snapshot()
	if before.PieceY != after.PieceY || before.Score != after.Score {
		t.Error("simulation advanced while paused")
	}

	// Unpause; at 60 FPS the 650ms auto-drop fires within 100 ticks.
	input.Set(platformcore.ActionPause)
	g.Step(input)
	input.Clear()
	for i := 0; i < 100; i++ {
		g.Step(input)
	}
	if g.Snapshot().PieceY <= before.PieceY {
		t.Error("piece should fall after unpausing")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Pack the board with pairwise non-matching colors plus one ball in
	// the hidden buffer so the next lock triggers game over.
	grid := g.engine.Grid()
	for row := 3; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			grid.Set(row, col, core.Cell((row*grid.Cols()+col)%127))
		}
	}
	grid.Set(2, 0, 1)

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionHardDrop)
	g.Step(input)

	input.Clear()
	for i := 0; i < 500 && !g.State().GameOver; i++ {
		g.Step(input)
	}
	if !g.State().GameOver {
		t.Fatal("game should end with a ball stuck in the hidden buffer")
	}

	input.Set(platformcore.ActionRestart)
	g.Step(input)
	if g.State().GameOver {
		t.Fatal("restart should leave the game-over state")
	}
	snap := g.Snapshot()
	if snap.Score != 0 || snap.BallsOnGrid != 0 || !snap.HasPiece {
		t.Errorf("restart should reset the board, got %+v", snap)
	}
}

func TestRenderShowsBoardAndPreview(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Hexfall") {
		t.Error("HUD should name the game")
	}
	if !strings.Contains(out, "Next:") {
		t.Error("preview panel should be drawn")
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "└") {
		t.Error("board border should be drawn")
	}
	// The falling piece spawns in the hidden buffer, so only the empty
	// board markers are visible at first.
	if !strings.Contains(out, "·") {
		t.Error("empty cells should be drawn")
	}
}

func TestRegisteredInRegistry(t *testing.T) {
	if !registry.Exists("hexfall") {
		t.Fatal("hexfall should self-register")
	}
	game, err := registry.Create("hexfall")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if game.ID() != "hexfall" || game.Title() != "Hexfall" {
		t.Errorf("unexpected identity: %s / %s", game.ID(), game.Title())
	}
}
