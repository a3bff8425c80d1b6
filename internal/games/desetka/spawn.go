package desetka

import "github.com/vovakirdan/desetka/internal/core"

// SpawnOutcome is the result of SpawnRow.
type SpawnOutcome int

const (
	SpawnContinued SpawnOutcome = iota // Row added and settled
	SpawnDeferred                      // A bomb went off; settling runs after a delay
	SpawnGameOver                      // Top row was occupied; grid untouched
)

// String returns the outcome's name.
func (o SpawnOutcome) String() string {
	switch o {
	case SpawnContinued:
		return "continued"
	case SpawnDeferred:
		return "deferred"
	case SpawnGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SpawnRow pushes a new row in from the bottom.
func (s *Session) SpawnRow() SpawnOutcome {
	// A spawn still settling from a detonation finishes before the next one.
	if s.tasks.cancel(taskFinishSpawn) {
		s.finishSpawn()
	}

	if s.grid.RowOccupied(0) {
		s.endGame()
		return SpawnGameOver
	}

	s.grid.ShiftUp()
	bottom := s.grid.Rows() - 1
	for col := 0; col < s.grid.Cols(); col++ {
		s.grid.Place(s.cells.Make(bottom, col, s.cells.Special(s.state.Level)))
	}
	s.cue(CueSpawn)

	if detonated := s.grid.TickBombs(); len(detonated) > 0 {
		for _, c := range detonated {
			s.emit(c, core.ColorBrightRed, 20)
		}
		s.cue(CueBomb)
		s.log.Debug("bomb detonated", "count", len(detonated))
		s.invalidateHint()
		s.tasks.schedule(taskFinishSpawn, s.cfg.Timing.BombDelay)
		return SpawnDeferred
	}

	s.finishSpawn()
	return SpawnContinued
}

// finishSpawn settles the board after a new row arrived.
func (s *Session) finishSpawn() {
	st := &s.state

	s.grid.Gravity()
	s.grid.UpdateFreeze()
	s.ensurePlayable()

	occupied := s.grid.RowOccupied(s.cfg.Rules.LastStandRow)
	switch {
	case occupied && !st.LastStand:
		st.LastStand = true
		st.SpawnInterval = s.ramp.LastStand(st.SpawnInterval)
		s.cue(CueDanger)
		s.log.Info("last stand", "interval", st.SpawnInterval)
	case !occupied && st.LastStand:
		st.LastStand = false
		st.SpawnInterval = s.ramp.Interval(st.Level)
		s.log.Info("last stand cleared", "interval", st.SpawnInterval)
	}

	if s.grid.RowCount(s.cfg.Rules.DangerRow) > s.cfg.Rules.DangerCells {
		s.cue(CueDanger)
	}

	s.refreshHint()
}

// ensurePlayable forces a complementary pair into the bottom row when no
// valid pair is left on the board.
func (s *Session) ensurePlayable() {
	if _, ok := FindHint(s.grid, s.rules); ok {
		return
	}

	var candidates []*Cell
	bottom := s.grid.Rows() - 1
	for col := 0; col < s.grid.Cols(); col++ {
		if c := s.grid.At(bottom, col); c != nil {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) < 2 {
		candidates = s.grid.Cells()
	}
	if len(candidates) < 2 {
		return
	}

	i := s.rng.Intn(len(candidates))
	j := s.rng.Intn(len(candidates) - 1)
	if j >= i {
		j++
	}
	x, y := candidates[i], candidates[j]
	b := s.rng.Intn(4) + 1
	x.Value, y.Value = b, 10-b

	for _, c := range []*Cell{x, y} {
		c.strip()
		for _, n := range s.grid.orthogonal(c) {
			n.strip()
		}
	}
	s.grid.UpdateFreeze()
}
