package desetka

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/desetka/internal/config"
)

func fullBoard() []string {
	rows := make([]string, 8)
	for i := range rows {
		rows[i] = "1 2 3 4 5 6"
	}
	return rows
}

func TestSpawnRowGameOverLeavesGridUntouched(t *testing.T) {
	s, audio := newTestSession(t, fullBoard()...)
	s.state.Score = 500
	before := BoardString(s.grid)

	if got := s.SpawnRow(); got != SpawnGameOver {
		t.Fatalf("SpawnRow = %v, want %v", got, SpawnGameOver)
	}
	if BoardString(s.grid) != before {
		t.Error("game over must not change the board")
	}

	st := s.State()
	if !st.Over || st.Running {
		t.Errorf("over=%v running=%v", st.Over, st.Running)
	}
	sum, ok := s.Summary()
	if !ok {
		t.Fatal("summary missing after game over")
	}
	if sum.Score != 500 || !sum.Record || sum.Best != 500 || sum.RunID != st.RunID {
		t.Errorf("summary = %+v", sum)
	}
	if audio.count(CueGameOver) != 1 {
		t.Error("game over cue missing")
	}
}

func TestSpawnRowNoRecordBelowBest(t *testing.T) {
	audio := &recordingAudio{}
	s := NewSession(config.DefaultDesetkaConfig(), rand.New(rand.NewSource(1)), WithAudio(audio), WithBest(1000))
	s.Start()
	s.grid = parseGrid(t, 8, 6, fullBoard())
	s.state.Score = 400

	s.SpawnRow()
	sum, _ := s.Summary()
	if sum.Record || sum.Best != 1000 || s.State().Best != 1000 {
		t.Errorf("summary = %+v, best %d", sum, s.State().Best)
	}
}

func TestSpawnRowAddsBottomRow(t *testing.T) {
	s, audio := newTestSession(t, "1 9 . . . .")

	if got := s.SpawnRow(); got != SpawnContinued {
		t.Fatalf("SpawnRow = %v, want %v", got, SpawnContinued)
	}
	if s.grid.Count() != 8 {
		t.Errorf("Count = %d, want 8", s.grid.Count())
	}
	if s.grid.RowCount(7) != 6 {
		t.Errorf("bottom row has %d cells, want 6", s.grid.RowCount(7))
	}
	if c := s.grid.At(6, 0); c == nil || c.Value != 1 {
		t.Errorf("old bottom row should move up, got %v", c)
	}
	for _, c := range s.grid.Cells() {
		if c.Special != SpecialNone {
			t.Errorf("level 1 spawned a %v cell", c.Special)
		}
	}
	if audio.count(CueSpawn) != 1 {
		t.Error("spawn cue missing")
	}
	if !s.State().HasHint {
		t.Error("hint should be refreshed after a spawn")
	}
	assertSettled(t, s.grid)
}

func TestSpawnAlwaysLeavesAPlayablePair(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		s := NewSession(config.DefaultDesetkaConfig(), rand.New(rand.NewSource(seed)))
		s.Start()
		if _, ok := FindHint(s.grid, s.rules); !ok {
			t.Fatalf("seed %d: no playable pair at start\n%s", seed, BoardString(s.grid))
		}
		s.state.Level = 9

		for i := 0; i < 4; i++ {
			switch s.SpawnRow() {
			case SpawnGameOver:
				t.Fatalf("seed %d: unexpected game over", seed)
			case SpawnDeferred:
				s.tasks.cancel(taskFinishSpawn)
				s.finishSpawn()
			}
			p, ok := FindHint(s.grid, s.rules)
			if !ok {
				t.Fatalf("seed %d spawn %d: no playable pair\n%s", seed, i, BoardString(s.grid))
			}
			if p.A.Locked || p.A.Frozen || p.B.Locked || p.B.Frozen {
				t.Fatalf("seed %d: hint uses a blocked cell", seed)
			}
		}
	}
}

func TestEnsurePlayableForcesComplementInBottomRow(t *testing.T) {
	s, _ := newTestSession(t,
		"1I 2 . . . .",
		"2L 3 4 . 3B .",
	)
	if s.State().HasHint {
		t.Fatalf("board should start without a pair\n%s", BoardString(s.grid))
	}
	s.ensurePlayable()

	found := false
	bottom := s.grid.Rows() - 1
	for c1 := 0; c1 < s.grid.Cols(); c1++ {
		for c2 := c1 + 1; c2 < s.grid.Cols(); c2++ {
			a, b := s.grid.At(bottom, c1), s.grid.At(bottom, c2)
			if a == nil || b == nil || a.Value+b.Value != 10 {
				continue
			}
			if a.Special == SpecialNone && b.Special == SpecialNone && IsValid(a, b, s.rules) {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("no plain complementary pair in the bottom row\n%s", BoardString(s.grid))
	}
	if _, ok := FindHint(s.grid, s.rules); !ok {
		t.Error("board still has no hint")
	}
}

func TestSpawnDeferredByDetonation(t *testing.T) {
	s, audio := newTestSession(t, "5B1 1 9 . . .")

	if got := s.SpawnRow(); got != SpawnDeferred {
		t.Fatalf("SpawnRow = %v, want %v", got, SpawnDeferred)
	}
	if s.grid.At(6, 0) != nil {
		t.Error("bomb should be gone")
	}
	if audio.count(CueBomb) != 1 {
		t.Error("bomb cue missing")
	}
	if !s.tasks.pending(taskFinishSpawn) {
		t.Fatal("finish should be scheduled")
	}
	if len(s.State().Particles) < 20 {
		t.Errorf("particles = %d, want a burst of at least 20", len(s.State().Particles))
	}

	s.Frame(0)
	s.Frame(s.cfg.Timing.BombDelay - time.Millisecond)
	if !s.tasks.pending(taskFinishSpawn) {
		t.Fatal("finish ran early")
	}
	s.Frame(s.cfg.Timing.BombDelay)
	if s.tasks.pending(taskFinishSpawn) {
		t.Error("finish should have run")
	}
	assertSettled(t, s.grid)
}

func TestSpawnDeferredDropsHintOnDetonatedBomb(t *testing.T) {
	s, _ := newTestSession(t, "1 2 3 4 6B1 7")
	bomb := s.grid.At(7, 4)
	if st := s.State(); !st.HasHint || (st.Hint.A != bomb && st.Hint.B != bomb) {
		t.Fatalf("hint = %+v, want the 4 and the bomb", st.Hint)
	}

	if got := s.SpawnRow(); got != SpawnDeferred {
		t.Fatalf("SpawnRow = %v, want %v", got, SpawnDeferred)
	}
	if st := s.State(); st.HasHint || st.HintTimer != 0 {
		t.Errorf("hint survived the detonation: %+v", st.Hint)
	}

	s.Frame(0)
	s.Frame(s.cfg.Timing.BombDelay)
	if st := s.State(); st.HasHint && (!s.grid.Contains(st.Hint.A) || !s.grid.Contains(st.Hint.B)) {
		t.Errorf("hint points at cells off the board: %+v", st.Hint)
	}
}

func TestSpawnWhileDeferredFinishesFirst(t *testing.T) {
	s, _ := newTestSession(t, "5B1 1 9 . . .")
	s.SpawnRow()

	if got := s.SpawnRow(); got != SpawnContinued {
		t.Fatalf("second SpawnRow = %v, want %v", got, SpawnContinued)
	}
	if s.tasks.pending(taskFinishSpawn) {
		t.Error("pending finish should be consumed")
	}
	assertSettled(t, s.grid)
	if s.grid.RowCount(7) != 6 || s.grid.RowCount(6) != 6 {
		t.Errorf("board after two spawns:\n%s", BoardString(s.grid))
	}
}

func TestLastStand(t *testing.T) {
	s, audio := newTestSession(t,
		"1 . . . . .",
		"2 . . . . .",
		"3 . . . . .",
		"4 . . . . .",
		"6 . . . . .",
	)
	base := s.State().SpawnInterval

	s.SpawnRow()
	st := s.State()
	if !st.LastStand {
		t.Fatalf("last stand not entered\n%s", BoardString(s.grid))
	}
	want := time.Duration(float64(base) * s.cfg.Difficulty.LastStandFactor)
	if st.SpawnInterval != want {
		t.Errorf("interval = %v, want %v", st.SpawnInterval, want)
	}
	if audio.count(CueDanger) != 1 {
		t.Errorf("danger cues = %d, want 1", audio.count(CueDanger))
	}

	for r := 2; r <= 4; r++ {
		s.grid.Remove(r, 0)
	}
	s.finishSpawn()
	st = s.State()
	if st.LastStand {
		t.Error("last stand should clear once the row empties")
	}
	if st.SpawnInterval != s.ramp.Interval(st.Level) {
		t.Errorf("interval = %v, want level interval %v", st.SpawnInterval, s.ramp.Interval(st.Level))
	}
}

func TestDangerCueWhenRowFillsUp(t *testing.T) {
	rows := make([]string, 6)
	for i := range rows {
		rows[i] = "1 2 3 . . ."
	}
	s, audio := newTestSession(t, rows...)

	s.SpawnRow()
	// One for entering last stand, one for the crowded danger row.
	if audio.count(CueDanger) != 2 {
		t.Errorf("danger cues = %d, want 2", audio.count(CueDanger))
	}
}

func TestSpawnOutcomeString(t *testing.T) {
	tests := map[SpawnOutcome]string{
		SpawnContinued:  "continued",
		SpawnDeferred:   "deferred",
		SpawnGameOver:   "game_over",
		SpawnOutcome(9): "unknown",
	}
	for o, want := range tests {
		if o.String() != want {
			t.Errorf("%d.String() = %q, want %q", o, o.String(), want)
		}
	}
}
