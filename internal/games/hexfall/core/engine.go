package core

import "math/rand"

// Phase is the engine's top-level state.
type Phase int

const (
	PhaseStart    Phase = iota // idle, waiting for the start signal
	PhasePlaying               // one active piece, accepting intents
	PhaseSettling              // no active piece, gravity and match checks running
	PhaseGameOver              // terminal until reset
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseSettling:
		return "settling"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Intent is a discrete player command. Intents are applied immediately and
// synchronously; they are ignored outside the Playing phase.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentHardDrop
	IntentRotateCW
	IntentRotateCCW
)

// Config holds the simulation tuning. Zero values are replaced by
// DefaultEngineConfig in New.
type Config struct {
	Cols        int // grid columns
	VisibleRows int // rows in the visible play area
	HiddenRows  int // buffer rows above the visible area
	Colors      int // ball palette size
	MinGroup    int // connected balls needed to clear a group

	DropIntervalMs   float64 // auto-drop period while Playing
	SettleIntervalMs float64 // gravity step period while Settling
	SideStep         float64 // horizontal distance per move intent
}

// DefaultEngineConfig returns the standard Hexfall tuning.
func DefaultEngineConfig() Config {
	return Config{
		Cols:             9,
		VisibleRows:      16,
		HiddenRows:       4,
		Colors:           5,
		MinGroup:         6,
		DropIntervalMs:   650,
		SettleIntervalMs: 60,
		SideStep:         0.5,
	}
}

// spawnAllowanceRows is how far above the hidden/visible boundary a freshly
// spawned piece floats. Settled balls inside the hidden buffer at or below
// this depth end the game; the allowance rows themselves are tolerated
// overflow slack.
const spawnAllowanceRows = 2

// Engine is the simulation context: grid, active piece, pending colors,
// score, phase and the timers that pace drops and settling. All engine
// state lives here; there are no package-level globals. The engine is
// single-threaded by construction: all mutation happens inside Tick and
// Apply, which the platform calls from one goroutine.
type Engine struct {
	cfg   Config
	grid  *Grid
	piece *Piece  // nil outside the Playing phase
	next  [3]Cell // colors of the upcoming piece, generated one ahead
	score int
	phase Phase

	colors *rand.Rand
	bits   BitSource

	dropAccum   float64 // ms since the last auto-drop
	settleAccum float64 // ms since the last settle step
}

// New creates an engine in the Start phase. The seed drives both piece
// colors and gravity tie-breaks, making a run fully reproducible.
func New(cfg Config, seed int64) *Engine {
	def := DefaultEngineConfig()
	if cfg.Cols <= 0 {
		cfg.Cols = def.Cols
	}
	if cfg.VisibleRows <= 0 {
		cfg.VisibleRows = def.VisibleRows
	}
	if cfg.HiddenRows <= 0 {
		cfg.HiddenRows = def.HiddenRows
	}
	// The hidden buffer must hold the spawned piece (anchor plus the row
	// above) and at least one overflow row below the allowance, or balls
	// would lock out of bounds and the game could never end.
	if cfg.HiddenRows <= spawnAllowanceRows {
		cfg.HiddenRows = spawnAllowanceRows + 1
	}
	if cfg.Colors <= 0 {
		cfg.Colors = def.Colors
	}
	if cfg.MinGroup <= 0 {
		cfg.MinGroup = def.MinGroup
	}
	if cfg.DropIntervalMs <= 0 {
		cfg.DropIntervalMs = def.DropIntervalMs
	}
	if cfg.SettleIntervalMs <= 0 {
		cfg.SettleIntervalMs = def.SettleIntervalMs
	}
	if cfg.SideStep <= 0 {
		cfg.SideStep = def.SideStep
	}

	rng := rand.New(rand.NewSource(seed))
	return &Engine{
		cfg:    cfg,
		grid:   NewGrid(cfg.VisibleRows, cfg.HiddenRows, cfg.Cols),
		phase:  PhaseStart,
		colors: rng,
		bits:   BitsFromRand(rng),
	}
}

// Start clears the grid and score, primes the pending color queue, spawns
// the first piece and enters the Playing phase. Also valid as a reset from
// GameOver.
func (e *Engine) Start() {
	e.grid.Clear()
	e.score = 0
	e.dropAccum = 0
	e.settleAccum = 0
	e.refillNext()
	e.spawn()
	e.phase = PhasePlaying
}

// Tick advances the simulation by deltaMs of wall-clock time. Within one
// call at most one discrete grid mutation happens: an auto-drop step while
// Playing or a settle/match step while Settling, each gated by its own
// accumulator so variable frame deltas stay smooth. Ticking in Start and
// GameOver is a no-op.
func (e *Engine) Tick(deltaMs float64) {
	switch e.phase {
	case PhasePlaying:
		e.dropAccum += deltaMs
		if e.dropAccum >= e.cfg.DropIntervalMs {
			e.dropAccum = 0
			e.stepDown()
		}
	case PhaseSettling:
		e.settleAccum += deltaMs
		if e.settleAccum >= e.cfg.SettleIntervalMs {
			e.settleAccum = 0
			e.settleStep()
		}
	}
}

// Apply executes a player intent. Intents arrive between ticks and take
// effect immediately; outside the Playing phase they are silently ignored.
func (e *Engine) Apply(intent Intent) {
	if e.phase != PhasePlaying || e.piece == nil {
		return
	}

	switch intent {
	case IntentMoveLeft:
		e.piece.Move(e.grid, -e.cfg.SideStep, 0)
	case IntentMoveRight:
		e.piece.Move(e.grid, e.cfg.SideStep, 0)
	case IntentSoftDrop:
		e.dropAccum = 0
		e.stepDown()
	case IntentHardDrop:
		e.piece.HardDrop(e.grid)
		e.lockPiece()
	case IntentRotateCW:
		e.piece.Rotate(e.grid, RotateCW)
	case IntentRotateCCW:
		e.piece.Rotate(e.grid, RotateCCW)
	}
}

// stepDown moves the active piece one row down, locking it if the step is
// irrecoverably blocked.
func (e *Engine) stepDown() {
	if e.piece == nil {
		return
	}
	if e.piece.Move(e.grid, 0, 1) == MoveLocked {
		e.lockPiece()
	}
}

// lockPiece converts the active piece's balls into grid cells and hands
// control to the settling phase. The piece reference is invalidated: any
// pending movement intent for it dies here.
func (e *Engine) lockPiece() {
	cells := e.piece.Cells()
	for i, c := range cells {
		if e.grid.InBounds(c.Row, c.Col) {
			e.grid.Set(c.Row, c.Col, e.piece.Colors[i])
		}
	}
	e.piece = nil
	e.settleAccum = 0
	e.phase = PhaseSettling
}

// settleStep performs one Settling-phase action: a gravity step if anything
// can still fall, otherwise a match scan. A clear keeps the engine in
// Settling because removed balls can expose new falls and chain further
// matches. Only when the grid is stable and matchless does the engine
// decide between game over and the next spawn.
func (e *Engine) settleStep() {
	if SettleStep(e.grid, e.bits) {
		return
	}

	res := ResolveMatches(e.grid, e.cfg.MinGroup)
	if res.Cleared > 0 {
		e.score += res.Score
		return
	}

	if e.overflowed() {
		e.phase = PhaseGameOver
		return
	}

	e.spawn()
	e.dropAccum = 0
	e.phase = PhasePlaying
}

// overflowed reports whether any settled ball sits inside the hidden buffer
// beyond the spawn-float allowance rows.
func (e *Engine) overflowed() bool {
	for row := spawnAllowanceRows; row < e.grid.HiddenRows(); row++ {
		for col := 0; col < e.grid.Cols(); col++ {
			if e.grid.Get(row, col) != Empty {
				return true
			}
		}
	}
	return false
}

// spawn creates the next piece from the pending color queue and refills
// the queue so the preview stays one piece ahead.
func (e *Engine) spawn() {
	e.piece = NewPiece(e.spawnX(), e.spawnY(), e.next)
	e.refillNext()
}

// spawnX is the fixed horizontal spawn anchor: the center of the board
// aligned to an even-row column boundary (3.5 for nine columns).
func (e *Engine) spawnX() float64 {
	return float64(e.cfg.Cols)/2 - 1
}

// spawnY places the anchor two rows above the hidden/visible boundary.
func (e *Engine) spawnY() float64 {
	return float64(e.grid.HiddenRows() - spawnAllowanceRows)
}

func (e *Engine) refillNext() {
	for i := range e.next {
		e.next[i] = Cell(e.colors.Intn(e.cfg.Colors))
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the accumulated score. It never decreases.
func (e *Engine) Score() int {
	return e.score
}

// Grid returns the settled-ball store. Callers must treat it as read-only;
// the engine owns all mutation.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// ActivePiece returns a copy of the falling piece, or ok=false when no
// piece exists (any phase but Playing).
func (e *Engine) ActivePiece() (Piece, bool) {
	if e.piece == nil {
		return Piece{}, false
	}
	return *e.piece, true
}

// NextColors returns the colors of the upcoming piece.
func (e *Engine) NextColors() [3]Cell {
	return e.next
}

// Config returns the engine's effective tuning.
func (e *Engine) Config() Config {
	return e.cfg
}
