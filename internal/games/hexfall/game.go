// Package hexfall provides the Hexfall falling-triple puzzle game.
// Three colored balls drop onto a hexagonally packed board; groups of
// six or more matching balls burst. All rules live in the core
// subpackage; this wrapper adapts them to the platform contract.
package hexfall

import (
	"fmt"

	"github.com/akulikov/hexfall/internal/config"
	platformcore "github.com/akulikov/hexfall/internal/core"
	"github.com/akulikov/hexfall/internal/games/hexfall/core"
	"github.com/akulikov/hexfall/internal/registry"
)

// Game implements the Hexfall game on top of the pure rules engine.
type Game struct {
	cfg    config.HexfallConfig
	diff   *config.DifficultyManager
	engine *core.Engine

	tick      uint64
	msPerTick float64

	// Screen layout
	screenW   int
	screenH   int
	hudHeight int
	boardX    int
	boardY    int
	panelX    int
	tooSmall  bool

	paused bool
}

// Package-level variables for config/difficulty (set by CLI flags before Reset)
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register("hexfall", func() registry.Game {
		return New()
	})
}

// New creates a new Hexfall game.
func New() *Game {
	return &Game{
		hudHeight: 2,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "hexfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Hexfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	hc, err := config.LoadHexfall(configPath)
	if err != nil {
		hc = config.DefaultHexfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHexfallPreset(&hc, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = hc
	g.diff = config.NewDifficultyManager(hc.Difficulty)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = platformcore.DefaultConfig().TickRate
	}
	g.msPerTick = 1000.0 / float64(tickRate)
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.engine = core.New(core.Config{
		Cols:             hc.Board.Cols,
		VisibleRows:      hc.Board.VisibleRows,
		HiddenRows:       hc.Board.HiddenRows,
		Colors:           hc.Rules.Colors,
		MinGroup:         hc.Rules.MinGroup,
		DropIntervalMs:   hc.Timing.DropIntervalMs,
		SettleIntervalMs: hc.Timing.SettleIntervalMs,
		SideStep:         hc.Timing.SideStep,
	}, cfg.Seed)
	g.engine.Start()

	g.layout()
}

// layout computes board and panel positions from the screen dimensions.
// Each board cell renders two characters wide so the odd-row half-column
// shift becomes a one-character indent.
func (g *Game) layout() {
	ec := g.engine.Config()
	boardW := g.boardWidth()
	boardH := ec.VisibleRows + 2
	panelW := 12

	requiredW := boardW + panelW + 2
	requiredH := boardH + g.hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardX = (g.screenW - requiredW) / 2
	g.boardY = g.hudHeight
	g.panelX = g.boardX + boardW + 2
}

func (g *Game) boardWidth() int {
	return g.engine.Config().Cols*2 + 3
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionRestart) && g.engine.Phase() == core.PhaseGameOver {
		g.engine.Start()
		g.paused = false
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && g.engine.Phase() != core.PhaseGameOver {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.applyInput(input)

	// Difficulty speeds the simulation up by dilating elapsed time, so
	// the engine's drop interval itself stays fixed.
	delta := g.msPerTick
	if g.engine.Phase() == core.PhasePlaying {
		delta *= g.diff.TimeScale(g.engine.Score(), int(g.tick))
	}
	g.engine.Tick(delta)

	return platformcore.StepResult{State: g.State()}
}

// applyInput forwards mapped actions to the engine as intents.
// The engine ignores them outside the Playing phase.
func (g *Game) applyInput(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionLeft) {
		g.engine.Apply(core.IntentMoveLeft)
	}
	if input.Has(platformcore.ActionRight) {
		g.engine.Apply(core.IntentMoveRight)
	}
	if input.Has(platformcore.ActionSoftDrop) {
		g.engine.Apply(core.IntentSoftDrop)
	}
	if input.Has(platformcore.ActionHardDrop) {
		g.engine.Apply(core.IntentHardDrop)
	}
	if input.Has(platformcore.ActionRotateCW) {
		g.engine.Apply(core.IntentRotateCW)
	}
	if input.Has(platformcore.ActionRotateCCW) {
		g.engine.Apply(core.IntentRotateCCW)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderPiece(dst)
	g.renderPanel(dst)

	switch {
	case g.engine.Phase() == core.PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R", g.engine.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Hexfall - Score: %d", g.engine.Score())
	if g.diff.IsEnabled() {
		hud += fmt.Sprintf("  Speed: x%.1f", g.diff.TimeScale(g.engine.Score(), int(g.tick)))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the border and the settled balls of the visible rows.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	grid := g.engine.Grid()
	dst.DrawBox(g.boardX, g.boardY, g.boardWidth(), grid.VisibleRows()+2)

	for row := grid.HiddenRows(); row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			x, y := g.cellScreenPos(row, col)
			if c := grid.Get(row, col); c != core.Empty {
				dst.SetColored(x, y, '●', platformcore.BallColor(int(c)))
			} else {
				dst.SetColored(x, y, '·', platformcore.ColorGray)
			}
		}
	}
}

// renderPiece draws the falling piece's balls that are inside the
// visible rows. Balls still in the hidden buffer stay off screen.
func (g *Game) renderPiece(dst *platformcore.Screen) {
	piece, ok := g.engine.ActivePiece()
	if !ok {
		return
	}
	grid := g.engine.Grid()
	cells := piece.Cells()
	for i, c := range cells {
		if c.Row < grid.HiddenRows() || !grid.InBounds(c.Row, c.Col) {
			continue
		}
		x, y := g.cellScreenPos(c.Row, c.Col)
		dst.SetColored(x, y, '●', platformcore.BallColor(int(piece.Colors[i])))
	}
}

// cellScreenPos maps a grid cell to screen coordinates inside the board
// border. Odd rows shift right one character to show the hex packing.
func (g *Game) cellScreenPos(row, col int) (int, int) {
	indent := 0
	if row&1 != 0 {
		indent = 1
	}
	x := g.boardX + 1 + col*2 + indent
	y := g.boardY + 1 + (row - g.engine.Grid().HiddenRows())
	return x, y
}

// renderPanel draws the next-piece preview beside the board.
func (g *Game) renderPanel(dst *platformcore.Screen) {
	dst.DrawText(g.panelX, g.boardY+1, "Next:")
	next := g.engine.NextColors()
	// Preview mirrors the spawn shape: anchor below, two balls above.
	dst.SetColored(g.panelX+1, g.boardY+3, '●', platformcore.BallColor(int(next[1])))
	dst.SetColored(g.panelX+3, g.boardY+3, '●', platformcore.BallColor(int(next[2])))
	dst.SetColored(g.panelX+2, g.boardY+4, '●', platformcore.BallColor(int(next[0])))
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := platformcore.Clamp((dst.Width()-boxW)/2, 0, dst.Width())
	boxY := platformcore.Clamp((dst.Height()-boxH)/2, 0, dst.Height())

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.DrawHLine(boxX+1, y, boxW-2, ' ')
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Phase() == core.PhaseGameOver,
		Paused:   g.paused,
	}
}
