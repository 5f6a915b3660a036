package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Model is the Bubble Tea model driving the game. The terminal loop runs
// on wall-clock tick messages; a fixed-step clock converts the measured
// real-time deltas into simulation steps so the game logic never sees
// frame jitter.
type Model struct {
	game       *tetris.Game
	clock      *tetris.Clock
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	overlay    *TuningOverlay
	lastTick   time.Time
	gameState  core.GameState
	started    bool
	quitting   bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   tetris.New(),
		clock:  tetris.NewClock(cfg.TickRate),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if m.overlay.HandleKey(msg) {
			m.game.SetTuning(m.overlay.Tuning())
		}
		if m.overlay.Closed() {
			m.overlay = nil
			m.keys.ReleaseAll()
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "t":
		m.overlay = NewTuningOverlay(m.game.Tuning())
		m.keys.ReleaseAll()
		return m, nil
	}

	if m.keys.Record(msg, time.Now()) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The simulation is board-sized, not screen-sized; a resize only needs
	// a reset before the first piece locks anything in.
	if !m.started {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs the simulation steps owed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.started {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.started = true
		m.lastTick = now
		return m, tickCmd(m.config.TickRate)
	}

	elapsed := now.Sub(m.lastTick)
	m.lastTick = now

	steps := m.clock.Advance(elapsed)
	if m.overlay != nil {
		// Editing feel settings freezes the game without consuming the
		// pause toggle.
		return m, tickCmd(m.config.TickRate)
	}

	for i := 0; i < steps; i++ {
		// Edge actions drain on the first step of the batch; later steps
		// in the same batch only see the live holds.
		frame := m.keys.Frame(now)
		if frame.Has(core.ActionRestart) && m.gameState.GameOver {
			// Fresh seed per round.
			m.config.Seed = time.Now().UnixNano()
			m.game.Reset(m.config)
			m.gameState = m.game.State()
			m.scoreSaved = false
			continue
		}

		result := m.game.Step(frame)
		m.gameState = result.State
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.gameState.Score, m.gameState.Lines, m.gameState.Level, m.config.Seed)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.overlay != nil {
		return m.overlay.View(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
