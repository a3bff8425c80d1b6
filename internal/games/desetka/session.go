package desetka

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/desetka/internal/config"
)

// Drag is the in-progress link gesture.
type Drag struct {
	Active bool
	Start  *Cell
	End    *Cell   // Current eligible target under the pointer
	X, Y   float64 // Pointer position in board cells
}

// State is the whole mutable state of a run.
type State struct {
	Score      int
	Level      int
	Best       int
	LastPoints int

	SpawnInterval time.Duration
	SpawnTimer    time.Duration

	Running bool
	Paused  bool
	Over    bool

	Combo       int
	ComboTimer  time.Duration
	Streak      int
	StreakMode  bool
	StreakTimer time.Duration

	LastStand    bool
	FreezeActive bool
	FreezeTimer  time.Duration

	Drag      Drag
	Hint      Pair
	HasHint   bool
	HintTimer time.Duration // Idle time since the last gesture or re-hint

	Particles []Particle
	Banner    Banner
	Inventory Inventory
	SoundOn   bool
	RunID     string
}

// Summary describes a finished run.
type Summary struct {
	RunID    string
	Score    int
	Level    int
	Best     int // Best score after this run
	Record   bool
	Duration time.Duration
}

// Session runs one game of desetka at a time.
// It is not safe for concurrent use; the platform drives it from one goroutine.
type Session struct {
	cfg   config.DesetkaConfig
	rules Rules
	ramp  *config.Ramp
	rng   Rand
	audio AudioSink
	log   *log.Logger

	grid  *Grid
	cells *CellFactory
	tasks taskQueue
	clock clock
	state State

	best      int
	soundOn   bool
	elapsed   time.Duration
	lastHype  time.Duration
	hypeShown bool
	summary   *Summary
}

// Option configures a Session.
type Option func(*Session)

// WithAudio sets the sink that receives sound cues.
func WithAudio(a AudioSink) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithBest seeds the best score read from persistent storage.
func WithBest(best int) Option {
	return func(s *Session) {
		s.best = best
	}
}

// WithSound sets whether cues are played when the first run starts.
func WithSound(on bool) Option {
	return func(s *Session) {
		s.soundOn = on
	}
}

// NewSession creates an idle session. Call Start to begin a run.
func NewSession(cfg config.DesetkaConfig, rng Rand, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		rules:   Rules{SameMaxDistance: cfg.Rules.SameMaxDistance, SameBuildsCombo: cfg.Rules.SameBuildsCombo},
		ramp:    config.NewRamp(cfg.Difficulty),
		rng:     rng,
		audio:   nopAudio{},
		log:     log.New(io.Discard),
		soundOn: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.grid = NewGrid(cfg.Board.Rows, cfg.Board.Cols)
	s.cells = NewCellFactory(rng, cfg.Specials)
	return s
}

// Start resets every field and begins a new run with the bottom rows filled.
func (s *Session) Start() {
	if s.state.RunID != "" {
		s.soundOn = s.state.SoundOn
	}

	s.grid = NewGrid(s.cfg.Board.Rows, s.cfg.Board.Cols)
	s.cells = NewCellFactory(s.rng, s.cfg.Specials)
	for r := s.grid.Rows() - s.cfg.Board.InitialRows; r < s.grid.Rows(); r++ {
		for c := 0; c < s.grid.Cols(); c++ {
			s.grid.Place(s.cells.Make(r, c, SpecialNone))
		}
	}

	s.tasks.clear()
	s.clock = clock{}
	s.elapsed = 0
	s.lastHype = 0
	s.hypeShown = false
	s.summary = nil
	s.state = State{
		Level:         1,
		Best:          s.best,
		SpawnInterval: s.ramp.Interval(1),
		Running:       true,
		SoundOn:       s.soundOn,
		RunID:         uuid.NewString(),
	}

	s.ensurePlayable()
	s.refreshHint()
	s.log.Info("run started", "run", s.state.RunID, "best", s.best)
}

// State returns a copy of the run state.
// Pointers inside it refer to live cells and must not be modified.
func (s *Session) State() State {
	return s.state
}

// Grid returns the live board.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Rules returns the match rules in force.
func (s *Session) Rules() Rules {
	return s.rules
}

// Config returns the tuning the session was built with.
func (s *Session) Config() config.DesetkaConfig {
	return s.cfg
}

// Summary returns the result of the last finished run.
func (s *Session) Summary() (Summary, bool) {
	if s.summary == nil {
		return Summary{}, false
	}
	return *s.summary, true
}

// HintVisible reports whether the cached hint should be shown.
func (s *Session) HintVisible() bool {
	return s.state.HasHint && s.state.HintTimer >= s.cfg.Timing.HintIdle
}

// SpawnProgress returns how full the spawn timer is, in [0,1].
func (s *Session) SpawnProgress() float64 {
	if s.state.SpawnInterval <= 0 {
		return 0
	}
	p := float64(s.state.SpawnTimer) / float64(s.state.SpawnInterval)
	if p > 1 {
		return 1
	}
	return p
}

// ToggleSound mutes or unmutes cues.
func (s *Session) ToggleSound() {
	s.state.SoundOn = !s.state.SoundOn
}

func (s *Session) active() bool {
	return s.state.Running && !s.state.Paused
}

func (s *Session) refreshHint() {
	s.state.Hint, s.state.HasHint = FindHint(s.grid, s.rules)
	s.state.HintTimer = 0
}

func (s *Session) invalidateHint() {
	s.state.Hint = Pair{}
	s.state.HasHint = false
	s.state.HintTimer = 0
}

// PressAt starts a gesture on (row, col). Empty and frozen cells are ignored.
func (s *Session) PressAt(row, col int) bool {
	if !s.active() {
		return false
	}
	s.state.HintTimer = 0
	c := s.grid.At(row, col)
	if c == nil || c.Frozen {
		return false
	}
	s.state.Drag = Drag{Active: true, Start: c, X: float64(col) + 0.5, Y: float64(row) + 0.5}
	s.cue(CueClick)
	return true
}

// DragTo moves the pointer to board position (x, y), which lies over (row, col).
func (s *Session) DragTo(row, col int, x, y float64) {
	if !s.active() {
		return
	}
	d := &s.state.Drag
	d.X, d.Y = x, y
	if !d.Active {
		return
	}
	target := s.grid.At(row, col)
	if target != nil && target != d.Start && !target.Frozen {
		d.End = target
	} else {
		d.End = nil
	}
}

// ReleaseAt ends the gesture over (row, col).
// A valid or unlocking pair is resolved; any other cell rejects and resets the streak.
func (s *Session) ReleaseAt(row, col int) (MatchResult, bool) {
	if !s.state.Drag.Active || !s.active() {
		return MatchResult{}, false
	}
	start := s.state.Drag.Start
	s.CancelDrag()

	if !s.grid.Contains(start) {
		return MatchResult{}, false
	}
	target := s.grid.At(row, col)
	if target == nil || target == start || target.Frozen {
		return MatchResult{}, false
	}
	if IsValid(start, target, s.rules) || CanUnlock(start, target, s.rules) {
		return s.ProcessMatch(start, target), true
	}
	s.cue(CueBad)
	s.state.Streak = 0
	return MatchResult{}, false
}

// CancelDrag drops the current gesture.
func (s *Session) CancelDrag() {
	d := &s.state.Drag
	d.Active = false
	d.Start = nil
	d.End = nil
}

// endGame stops the run. It is reached only from SpawnRow.
func (s *Session) endGame() {
	st := &s.state
	st.Running = false
	st.Over = true
	s.tasks.clear()
	s.CancelDrag()

	record := st.Score > s.best
	if record {
		s.best = st.Score
		st.Best = st.Score
	}
	s.summary = &Summary{
		RunID:    st.RunID,
		Score:    st.Score,
		Level:    st.Level,
		Best:     s.best,
		Record:   record,
		Duration: s.elapsed,
	}
	s.cue(CueGameOver)
	s.log.Info("game over", "run", st.RunID, "score", st.Score, "level", st.Level, "record", record)
}
