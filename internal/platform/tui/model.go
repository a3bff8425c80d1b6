package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/desetka/internal/core"
	"github.com/vovakirdan/desetka/internal/registry"
	"github.com/vovakirdan/desetka/internal/storage"
)

// ScoreSaver persists record runs. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(gameID string, score int, runID string) (int64, error)
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreSaver
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	clock      func() time.Time
	bell       io.Writer
	quitting   bool
	scoreSaved bool   // Whether the record has been saved for current game over
	recordRun  string // Run ID of the last record written to the store
}

// Outcome is what a finished game session reports back to the menu.
type Outcome struct {
	BestScore int
	RecordRun string // Empty when no record was stored
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables persistence.
func NewModel(game registry.Game, store ScoreSaver, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		clock:      time.Now,
		bell:       os.Stdout,
	}
}

// WithBell redirects the terminal bell, mainly for tests.
func (m Model) WithBell(w io.Writer) Model {
	m.bell = w
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the run going and lets the game relayout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	now := m.clock()
	if m.started.IsZero() {
		// The first tick reports one tick of elapsed time, never zero.
		m.started = now.Add(-m.config.TickDuration())
	}
	m.inputFrame.Now = now.Sub(m.started)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRecord()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	if result.Bell {
		return m, tea.Batch(tickCmd(m.config.TickRate), ringBell(m.bell))
	}
	return m, tickCmd(m.config.TickRate)
}

// ringBell writes the terminal bell outside Update so it never interleaves
// with a frame being drawn.
func ringBell(w io.Writer) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		//nolint:errcheck // A missing bell is not worth stopping the game
		io.WriteString(w, "\a")
		return nil
	}
}

// saveRecord writes the final score when it beat the stored best.
func (m *Model) saveRecord() {
	if !m.gameState.Record {
		return
	}
	m.config.BestScore = m.gameState.Score
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.RunID); err == nil {
		m.recordRun = m.gameState.RunID
	}
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = m.clock().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.started = time.Time{}
	m.inputFrame.Clear()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".desetka", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BestScore returns the best score known after the session, including a
// record set while it ran.
func (m Model) BestScore() int {
	return m.config.BestScore
}

// Outcome reports the best score and the last record stored by the session.
func (m Model) Outcome() Outcome {
	return Outcome{BestScore: m.config.BestScore, RecordRun: m.recordRun}
}

// Run starts the Bubble Tea program for game and reports how the session
// ended.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Outcome, error) {
	var saver ScoreSaver
	if store != nil {
		saver = store
	}
	model := NewModel(game, saver, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return Outcome{BestScore: cfg.BestScore}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Outcome(), nil
	}
	return Outcome{BestScore: cfg.BestScore}, nil
}
