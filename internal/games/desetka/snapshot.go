package desetka

// Snapshot captures the deterministic part of a run for replay checks.
// The run ID is random per run and left out.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Combo      int
	Streak     int
	StreakMode bool
	LastStand  bool
	Frozen     bool
	Over       bool
	Inventory  Inventory
	Board      string
	Hint       [4]int // Row/col of both hint cells, -1 when there is none
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.session.State()
	hint := [4]int{-1, -1, -1, -1}
	if st.HasHint {
		hint = [4]int{st.Hint.A.Row, st.Hint.A.Col, st.Hint.B.Row, st.Hint.B.Col}
	}
	return Snapshot{
		Tick:       g.tick,
		Score:      st.Score,
		Level:      st.Level,
		Combo:      st.Combo,
		Streak:     st.Streak,
		StreakMode: st.StreakMode,
		LastStand:  st.LastStand,
		Frozen:     st.FreezeActive,
		Over:       st.Over,
		Inventory:  st.Inventory,
		Board:      BoardString(g.session.Grid()),
		Hint:       hint,
	}
}
