package tetris

import (
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Scoring constants (classic NES table, multiplied by level+1 on clear).
const (
	linesPerLevel   = 10
	softDropPerCell = 1
	hardDropPerCell = 2
)

var clearScores = [5]int{0, 40, 100, 300, 1200}

// Package-level config hooks set by the CLI before the game is created,
// following the platform convention for per-game flags.
var (
	configPath string
	feelPreset string
)

// SetConfigPath sets a custom feel-config YAML path.
func SetConfigPath(path string) {
	configPath = path
}

// SetFeelPreset selects a named feel preset (relaxed, classic, fast).
func SetFeelPreset(preset string) {
	feelPreset = preset
}

// Game is the complete simulation: board, falling piece, sequencer, input
// repeat machines, gravity and lock-delay timers. It implements the
// platform contract (Reset/Step/Render/State) and is driven exclusively by
// fixed ticks.
type Game struct {
	runtime core.RuntimeConfig
	stepMs  float64

	// tuning is the snapshot active for the current tick; pending is
	// written by the settings surface and picked up at the next tick
	// boundary.
	tuning  Tuning
	pending *Tuning
	mu      sync.Mutex

	seq     *Sequencer
	board   *Board
	current Piece
	next    PieceType

	tick  uint64
	score int
	lines int
	level int

	gravAccumMs   float64
	grounded      bool
	lockElapsedMs float64

	leftShift  ShiftRepeat
	rightShift ShiftRepeat
	leftHeld   bool
	rightHeld  bool
	softHeld   bool

	paused   bool
	gameOver bool
	tooSmall bool

	linesThisTick int
}

// New creates a game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game from the runtime config and the
// feel configuration on disk.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.stepMs = 1000.0 / float64(runtime.TickRate)

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if feelPreset != "" {
		config.ApplyFeelPreset(&cfg, config.FeelPreset(feelPreset))
	}

	tuning := Tuning{
		DASMs:         cfg.Feel.DASMs,
		ARRMs:         cfg.Feel.ARRMs,
		LockDelayMs:   cfg.Feel.LockDelayMs,
		GravityMult:   cfg.Feel.GravityMult,
		SoftDropMult:  cfg.Feel.SoftDropMult,
		AvoidSZOFirst: cfg.Randomizer.AvoidSZOFirst,
	}
	g.mu.Lock()
	g.tuning = tuning.Clamped()
	g.pending = nil
	g.mu.Unlock()

	seed := runtime.Seed
	if cfg.Randomizer.Seed != 0 {
		// A pinned seed in the config wins: reproducible play on purpose.
		seed = cfg.Randomizer.Seed
	}
	g.seq = NewSequencer(uint32(seed), tuning.AvoidSZOFirst) //#nosec G115 -- deliberate 32-bit truncation for the LCG

	g.board = NewBoard()
	g.current = Spawn(g.seq.Next())
	g.next = g.seq.Next()

	g.tick = 0
	g.score = 0
	g.lines = 0
	g.level = 0
	g.gravAccumMs = 0
	g.grounded = false
	g.lockElapsedMs = 0
	g.leftShift = ShiftRepeat{}
	g.rightShift = ShiftRepeat{}
	g.leftHeld = false
	g.rightHeld = false
	g.softHeld = false
	g.paused = false
	g.gameOver = false
	g.linesThisTick = 0

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// SetTuning replaces the feel configuration. The new values take effect at
// the next tick boundary; the tick in flight keeps its snapshot.
func (g *Game) SetTuning(t Tuning) {
	g.mu.Lock()
	copied := t
	g.pending = &copied
	g.mu.Unlock()
}

// Tuning returns the snapshot currently in effect.
func (g *Game) Tuning() Tuning {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending != nil {
		return *g.pending
	}
	return g.tuning
}

// snapshotTuning adopts any pending tuning at a tick boundary.
func (g *Game) snapshotTuning() Tuning {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending != nil {
		g.tuning = g.pending.Clamped()
		g.pending = nil
	}
	return g.tuning
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.linesThisTick = 0

	if in.Has(core.ActionRestart) && g.gameOver {
		// Deterministic restart: the next seed is the current LCG state.
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     int64(g.seq.State()),
		})
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return g.result()
	}

	t := g.snapshotTuning()

	// Held-key edges: releases resolve before presses within a tick.
	nowLeft := in.Has(core.ActionLeft)
	nowRight := in.Has(core.ActionRight)
	nowSoft := in.Has(core.ActionSoftDrop)

	leftSteps, rightSteps := 0, 0
	if !nowLeft && g.leftHeld {
		g.leftShift.Release()
	}
	if !nowRight && g.rightHeld {
		g.rightShift.Release()
	}
	if nowLeft && !g.leftHeld {
		leftSteps += g.leftShift.Press()
	}
	if nowRight && !g.rightHeld {
		rightSteps += g.rightShift.Press()
	}
	g.leftHeld = nowLeft
	g.rightHeld = nowRight
	g.softHeld = nowSoft

	// Rotations before movement, matching the event order of the classic
	// loop.
	if in.Has(core.ActionRotateCW) {
		g.tryRotate(true)
	}
	if in.Has(core.ActionRotateCCW) {
		g.tryRotate(false)
	}

	if in.Has(core.ActionHardDrop) {
		g.hardDrop()
		return g.result()
	}

	// Auto-shift: both machines tick independently; blocked intents are
	// dropped without disturbing the timers.
	leftSteps += g.leftShift.Tick(g.stepMs, t.DASMs, t.ARRMs)
	rightSteps += g.rightShift.Tick(g.stepMs, t.DASMs, t.ARRMs)
	for i := 0; i < leftSteps; i++ {
		g.tryMove(-1)
	}
	for i := 0; i < rightSteps; i++ {
		g.tryMove(1)
	}

	g.applyGravity(t)

	return g.result()
}

// tryMove attempts a one-column horizontal translation. A successful move
// while grounded resets the lock-delay timer.
func (g *Game) tryMove(dCol int) {
	trial := g.current.Translated(dCol, 0)
	if Collides(g.board, trial) {
		return
	}
	g.current = trial
	if g.grounded {
		g.lockElapsedMs = 0
	}
}

// tryRotate attempts an SRS rotation. A successful rotation while grounded
// resets the lock-delay timer.
func (g *Game) tryRotate(cw bool) {
	rotated, ok := TryRotate(g.board, g.current, cw)
	if !ok {
		return
	}
	g.current = rotated
	if g.grounded {
		g.lockElapsedMs = 0
	}
}

// applyGravity advances the fall timer and the lock-delay machine for one
// tick.
func (g *Game) applyGravity(t Tuning) {
	interval := gravityIntervalMs(g.level, t.GravityMult)
	if g.softHeld {
		soft := softDropIntervalMs / t.SoftDropMult
		if soft < interval {
			interval = soft
		}
	}

	g.gravAccumMs += g.stepMs

	if Collides(g.board, g.current.Translated(0, 1)) {
		// Grounded: the lock-delay timer runs; moves and rotations reset
		// it elsewhere. Fall time stops accruing so sliding off a ledge
		// starts the descent fresh instead of bursting.
		g.grounded = true
		g.gravAccumMs = 0
		g.lockElapsedMs += g.stepMs
		if g.lockElapsedMs >= t.LockDelayMs {
			g.lock()
		}
		return
	}

	// Airborne again (a move or rotation slid the piece off its support).
	g.grounded = false
	g.lockElapsedMs = 0

	for g.gravAccumMs >= interval && !g.gameOver {
		g.gravAccumMs -= interval
		trial := g.current.Translated(0, 1)
		if Collides(g.board, trial) {
			g.grounded = true
			g.lockElapsedMs = 0
			break
		}
		g.current = trial
		if g.softHeld {
			g.score += softDropPerCell
		}
	}
}

// hardDrop teleports the piece to its ghost position and locks it
// immediately, bypassing the lock delay.
func (g *Game) hardDrop() {
	target := GhostRow(g.board, g.current)
	dropped := target - g.current.Row
	if dropped > 0 {
		g.current.Row = target
		g.score += dropped * hardDropPerCell
	}
	g.lock()
}

// lock merges the piece, sweeps full rows, applies scoring and level
// progression, and spawns the next piece. A colliding spawn ends the
// round.
func (g *Game) lock() {
	Merge(g.board, g.current)

	cleared := Sweep(g.board)
	g.linesThisTick = cleared
	if cleared > 0 {
		g.score += clearScores[cleared] * (g.level + 1)
		g.lines += cleared
		if g.lines/linesPerLevel > g.level {
			g.level = g.lines / linesPerLevel
		}
	}

	g.current = Spawn(g.next)
	g.next = g.seq.Next()
	g.gravAccumMs = 0
	g.lockElapsedMs = 0
	g.grounded = false

	if Collides(g.board, g.current) {
		g.gameOver = true
	}
}

// result packages the per-tick output.
func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:        g.State(),
		LinesCleared: g.linesThisTick,
	}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Current returns the falling piece, for rendering.
func (g *Game) Current() Piece {
	return g.current
}

// NextPiece returns the upcoming tetromino type, for the preview box.
func (g *Game) NextPiece() PieceType {
	return g.next
}

// Ghost returns the row the falling piece would land on.
func (g *Game) Ghost() int {
	return GhostRow(g.board, g.current)
}

// BoardCell exposes a locked cell for rendering and tests.
func (g *Game) BoardCell(col, row int) Cell {
	return g.board.At(col, row)
}
