package desetka

import (
	"strings"
	"testing"

	"github.com/vovakirdan/desetka/internal/core"
	"github.com/vovakirdan/desetka/internal/registry"
)

func newTestGame(t *testing.T, seed int64, rows ...string) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	if len(rows) > 0 {
		s := g.session
		s.grid = parseGrid(t, s.cfg.Board.Rows, s.cfg.Board.Cols, rows)
		s.grid.UpdateFreeze()
		s.refreshHint()
	}
	return g
}

// cellCenter returns the screen position inside slot (row, col).
func cellCenter(g *Game, row, col int) (int, int) {
	x, y := g.layout.CellOrigin(row, col)
	return x + g.layout.CellW/2, y + g.layout.CellH/2
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("desetka not registered")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "desetka" || g.Title() != "Desetka" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	script := map[int]core.Action{
		30:   core.ActionSelect,
		40:   core.ActionLeft,
		50:   core.ActionSelect,
		90:   core.ActionUp,
		100:  core.ActionSelect,
		110:  core.ActionRight,
		120:  core.ActionRight,
		130:  core.ActionSelect,
		400:  core.ActionShuffle,
		900:  core.ActionSelect,
		910:  core.ActionDown,
		920:  core.ActionSelect,
		1500: core.ActionInferno,
	}

	input := core.NewInputFrame()
	for i := 0; i < 2400; i++ {
		input.Clear()
		if a, ok := script[i]; ok {
			input.Set(a)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Tick != 2400 {
		t.Errorf("Tick = %d, want 2400", snap1.Tick)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := newTestGame(t, 1)
	g2 := newTestGame(t, 2)
	if g1.Snapshot().Board == g2.Snapshot().Board {
		t.Error("different seeds produced the same board")
	}
}

func TestPointerGesture(t *testing.T) {
	g := newTestGame(t, 1, "1 9 . . . .")

	px, py := cellCenter(g, 7, 0)
	tx, ty := cellCenter(g, 7, 1)

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerPress, X: px, Y: py})
	in.AddPointer(core.PointerEvent{Kind: core.PointerMotion, X: tx, Y: ty})
	g.Step(in)

	st := g.session.State()
	if !st.Drag.Active || st.Drag.End == nil || st.Drag.End.Value != 9 {
		t.Fatalf("drag = %+v", st.Drag)
	}

	in.Clear()
	in.AddPointer(core.PointerEvent{Kind: core.PointerRelease, X: tx, Y: ty})
	res := g.Step(in)
	if res.State.Score != 58 {
		t.Errorf("score = %d, want 58", res.State.Score)
	}
}

func TestPointerReleaseOffBoardCancels(t *testing.T) {
	g := newTestGame(t, 1, "1 9 . . . .")
	px, py := cellCenter(g, 7, 0)

	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerPress, X: px, Y: py})
	in.AddPointer(core.PointerEvent{Kind: core.PointerRelease, X: 0, Y: 0})
	g.Step(in)

	if g.session.State().Drag.Active || g.session.State().Score != 0 {
		t.Error("release outside the board should cancel")
	}
}

func TestKeyboardCursor(t *testing.T) {
	g := newTestGame(t, 1, ". . . 4 6 .")
	if g.cursorRow != 7 || g.cursorCol != 3 {
		t.Fatalf("cursor starts at %d,%d, want 7,3", g.cursorRow, g.cursorCol)
	}

	step := func(a core.Action) core.StepResult {
		in := core.NewInputFrame()
		in.Set(a)
		return g.Step(in)
	}

	step(core.ActionSelect)
	if !g.session.State().Drag.Active {
		t.Fatal("select should start a drag")
	}
	step(core.ActionRight)
	if end := g.session.State().Drag.End; end == nil || end.Value != 6 {
		t.Fatalf("drag target = %v, want the 6", end)
	}
	res := step(core.ActionSelect)
	if res.State.Score != 58 {
		t.Errorf("score = %d, want 58", res.State.Score)
	}

	for i := 0; i < 10; i++ {
		step(core.ActionRight)
		step(core.ActionDown)
	}
	if g.cursorRow != 7 || g.cursorCol != 5 {
		t.Errorf("cursor = %d,%d, want clamped to 7,5", g.cursorRow, g.cursorCol)
	}

	step(core.ActionSelect)
	step(core.ActionCancel)
	if g.session.State().Drag.Active {
		t.Error("cancel should drop the drag")
	}
}

func TestPauseAction(t *testing.T) {
	g := newTestGame(t, 1, "1 9 . . . .")

	in := core.NewInputFrame()
	g.Step(in)
	g.Step(in)
	timer := g.session.State().SpawnTimer

	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("pause action ignored")
	}
	in.Clear()
	for i := 0; i < 30; i++ {
		g.Step(in)
	}
	if g.session.State().SpawnTimer != timer {
		t.Error("time passed while paused")
	}

	in.Set(core.ActionPause)
	if res := g.Step(in); res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestSoundAction(t *testing.T) {
	g := newTestGame(t, 1)
	in := core.NewInputFrame()
	in.Set(core.ActionSound)
	g.Step(in)
	if g.session.State().SoundOn {
		t.Error("sound should be off")
	}
}

func TestSoundSurvivesReset(t *testing.T) {
	tests := []struct {
		name    string
		toggles int
		want    bool
	}{
		{"default on", 0, true},
		{"muted", 1, false},
		{"muted then unmuted", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			for range tt.toggles {
				in := core.NewInputFrame()
				in.Set(core.ActionSound)
				g.Step(in)
			}
			g.Reset(core.RuntimeConfig{Seed: 2, ScreenW: 80, ScreenH: 24})
			if got := g.session.State().SoundOn; got != tt.want {
				t.Errorf("SoundOn after reset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 12})

	res := g.Step(core.NewInputFrame())
	if !res.State.Paused {
		t.Error("a too small window should hold the game")
	}
	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("render:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.Step(core.NewInputFrame()).State.Paused {
		t.Error("game should resume after resize")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 7)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"DESETKA", "Lvl 1", "1 Shuffle:0", "3 Freeze:0", "sound:on", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestGameOverBellAndRecord(t *testing.T) {
	g := newTestGame(t, 1, fullBoard()...)
	s := g.session
	s.state.Score = 100
	s.state.SpawnTimer = s.state.SpawnInterval

	in := core.NewInputFrame()
	g.Step(in)
	res := g.Step(in)
	if !res.State.GameOver || !res.State.Record || !res.Bell {
		t.Fatalf("result = %+v", res)
	}
	if res.State.RunID == "" {
		t.Error("run id missing from state")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "NEW RECORD!") {
		t.Errorf("game over render:\n%s", out)
	}

	if g.Step(in).Bell {
		t.Error("bell should ring once")
	}

	runID := res.State.RunID
	g.Reset(core.RuntimeConfig{Seed: 2, ScreenW: 80, ScreenH: 24, BestScore: 100})
	st := g.State()
	if st.GameOver || st.Score != 0 || st.RunID == runID {
		t.Errorf("state after reset = %+v", st)
	}
	if g.session.State().Best != 100 {
		t.Errorf("best = %d, want 100", g.session.State().Best)
	}
}
