// Package desetka implements a falling-tile matching game: link two numbered
// cells that sum to ten, or equal values close together, before the rows
// reach the top.
package desetka

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/desetka/internal/config"
	"github.com/vovakirdan/desetka/internal/core"
	"github.com/vovakirdan/desetka/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "desetka"

// Package-level settings for games created by the registry factory.
var (
	tuning     = config.DefaultDesetkaConfig()
	gameLogger *log.Logger
)

// Configure sets the tuning and logger used by games created afterwards.
func Configure(cfg config.DesetkaConfig, logger *log.Logger) {
	tuning = cfg
	gameLogger = logger
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the platform: it maps screen input to board
// slots, keeps a keyboard cursor, and renders.
type Game struct {
	cfg     config.DesetkaConfig
	logger  *log.Logger
	session *Session
	cues    *cueRecorder
	soundOn bool

	tick    uint64
	tickDur time.Duration

	screenW, screenH int
	layout           Layout
	tooSmall         bool

	cursorRow, cursorCol int
	cursorShown          bool
}

// New creates a game with the package tuning.
func New() *Game {
	return &Game{cfg: tuning, logger: gameLogger, soundOn: true}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Desetka" }

// Reset starts a new run. The sound toggle carries over from the previous run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.session != nil {
		g.soundOn = g.session.State().SoundOn
	}
	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.cues = &cueRecorder{}
	g.session = NewSession(g.cfg, rand.New(rand.NewSource(cfg.Seed)),
		WithAudio(g.cues),
		WithLogger(g.logger),
		WithBest(cfg.BestScore),
		WithSound(g.soundOn),
	)
	g.session.Start()

	g.cursorRow = g.cfg.Board.Rows - 1
	g.cursorCol = g.cfg.Board.Cols / 2
	g.cursorShown = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the board layout for a new terminal size.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	var ok bool
	g.layout, ok = ComputeLayout(w, h, g.cfg.Board.Rows, g.cfg.Board.Cols)
	g.tooSmall = !ok
}

// Session exposes the engine, mainly for tests and the CLI.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one tick of input and advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.cues.reset()

	now := in.Now
	if now == 0 {
		now = time.Duration(g.tick) * g.tickDur
	}

	if in.Has(core.ActionSound) {
		g.session.ToggleSound()
	}
	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	st := g.session.State()
	if st.Over || st.Paused {
		return g.result()
	}
	if g.tooSmall {
		// Hold the clock so the time spent too small is not counted.
		g.session.clock.anchored = false
		return g.result()
	}

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}
	g.handleKeys(in)

	g.session.Frame(now)
	return g.result()
}

func (g *Game) handlePointer(ev core.PointerEvent) {
	row, col, ok := g.layout.CellAt(ev.X, ev.Y)
	if !ok {
		row, col = -1, -1
	}
	g.cursorShown = false

	switch ev.Kind {
	case core.PointerPress:
		if ok {
			g.session.PressAt(row, col)
		}
	case core.PointerMotion:
		bx, by := g.layout.BoardPoint(ev.X, ev.Y)
		g.session.DragTo(row, col, bx, by)
	case core.PointerRelease:
		if !ok {
			g.session.CancelDrag()
			return
		}
		g.session.ReleaseAt(row, col)
	}
}

func (g *Game) handleKeys(in core.InputFrame) {
	moved := false
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow--
		moved = true
	case in.Has(core.ActionDown):
		g.cursorRow++
		moved = true
	case in.Has(core.ActionLeft):
		g.cursorCol--
		moved = true
	case in.Has(core.ActionRight):
		g.cursorCol++
		moved = true
	}
	if moved {
		g.cursorRow = core.Clamp(g.cursorRow, 0, g.cfg.Board.Rows-1)
		g.cursorCol = core.Clamp(g.cursorCol, 0, g.cfg.Board.Cols-1)
		g.cursorShown = true
		g.session.DragTo(g.cursorRow, g.cursorCol, float64(g.cursorCol)+0.5, float64(g.cursorRow)+0.5)
	}

	if in.Has(core.ActionSelect) {
		g.cursorShown = true
		if g.session.State().Drag.Active {
			g.session.ReleaseAt(g.cursorRow, g.cursorCol)
		} else {
			g.session.PressAt(g.cursorRow, g.cursorCol)
		}
	}
	if in.Has(core.ActionCancel) {
		g.session.CancelDrag()
	}

	if in.Has(core.ActionShuffle) {
		g.session.UseShuffle()
	}
	if in.Has(core.ActionInferno) {
		g.session.UseInferno()
	}
	if in.Has(core.ActionFreeze) {
		g.session.UseFreeze()
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Bell: g.cues.alert}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	summary, over := g.session.Summary()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Over,
		Paused:   st.Paused || g.tooSmall,
		Record:   over && summary.Record,
		RunID:    st.RunID,
	}
}

// cueRecorder collects the cues of one tick for the platform.
type cueRecorder struct {
	cues  []Cue
	alert bool
}

func (r *cueRecorder) Play(c Cue) error {
	r.cues = append(r.cues, c)
	if c.Alert() {
		r.alert = true
	}
	return nil
}

func (r *cueRecorder) reset() {
	r.cues = r.cues[:0]
	r.alert = false
}
