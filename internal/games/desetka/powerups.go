package desetka

import (
	"fmt"

	"github.com/vovakirdan/desetka/internal/core"
)

// Inventory counts unused power-up charges. There is no upper bound.
type Inventory struct {
	Shuffle int
	Inferno int
	Freeze  int
}

// UseShuffle permutes the values of all occupied cells in place.
func (s *Session) UseShuffle() bool {
	st := &s.state
	if st.Inventory.Shuffle <= 0 || !s.active() {
		return false
	}
	st.Inventory.Shuffle--
	s.cue(CuePowerUp)

	cells := s.grid.Cells()
	values := s.permutedValues(cells)
	for i, c := range cells {
		s.emit(c, ValueColor(c.Value), 4)
		c.Value = values[i]
	}

	s.refreshHint()
	return true
}

// UseInferno clears the lowest occupied row for a flat bonus per cell.
// An empty board consumes nothing.
func (s *Session) UseInferno() bool {
	st := &s.state
	if st.Inventory.Inferno <= 0 || !s.active() {
		return false
	}
	row := s.grid.LowestOccupiedRow()
	if row < 0 {
		return false
	}
	st.Inventory.Inferno--
	s.cue(CuePowerUp)

	pts := 0
	for col := 0; col < s.grid.Cols(); col++ {
		if c := s.grid.Remove(row, col); c != nil {
			s.emit(c, ValueColor(c.Value), 8)
			pts += s.cfg.Scoring.InfernoPerCell
		}
	}
	st.Score += pts
	st.LastPoints = pts
	s.showBanner(fmt.Sprintf("INFERNO +%d", pts), core.ColorOrange)

	s.grid.Gravity()
	s.grid.UpdateFreeze()
	s.checkLevel()
	s.refreshHint()
	return true
}

// UseFreeze stops the spawn timer for the configured duration.
// It is rejected while a freeze is already running.
func (s *Session) UseFreeze() bool {
	st := &s.state
	if st.Inventory.Freeze <= 0 || !s.active() || st.FreezeActive {
		return false
	}
	st.Inventory.Freeze--
	st.FreezeActive = true
	st.FreezeTimer = s.cfg.Timing.FreezeDuration
	s.cue(CuePowerUp)
	s.showBanner("FREEZE", core.ColorBrightCyan)
	return true
}

// AutoShuffle breaks a deadlock: when no two cells satisfy the value rule it
// permutes the board and forces a complementary pair onto the first two cells.
func (s *Session) AutoShuffle() bool {
	if !s.state.Running {
		return false
	}
	cells := s.grid.Cells()
	for i, a := range cells {
		for _, b := range cells[i+1:] {
			if valuesMatch(a, b, s.rules) {
				return false
			}
		}
	}
	if len(cells) < 2 {
		return false
	}

	values := s.permutedValues(cells)
	b := s.rng.Intn(4) + 1
	values[0], values[1] = b, 10-b
	for i, c := range cells {
		s.emit(c, core.ColorBrightCyan, 3)
		c.Value = values[i]
	}

	s.showBanner("SHUFFLE!", core.ColorBrightCyan)
	s.cue(CueStreak)
	s.log.Info("auto-shuffle", "cells", len(cells))

	s.invalidateHint()
	s.tasks.schedule(taskHint, s.cfg.Timing.ShuffleHintDelay)
	return true
}

// permutedValues returns the cells' values in Fisher-Yates order.
func (s *Session) permutedValues(cells []*Cell) []int {
	values := make([]int, len(cells))
	for i, c := range cells {
		values[i] = c.Value
	}
	for i := len(values) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
	return values
}

// awardCombo grants power-ups at exact combo milestones.
func (s *Session) awardCombo(combo int) {
	inv := &s.state.Inventory
	switch combo {
	case 3:
		inv.Shuffle++
		s.showBanner("+SHUFFLE", core.ColorBrightCyan)
	case 5:
		inv.Inferno++
		s.showBanner("+INFERNO", core.ColorOrange)
	case 8:
		inv.Freeze++
		s.showBanner("+FREEZE", core.ColorBrightBlue)
	case 10:
		inv.Shuffle++
		inv.Inferno++
		s.showBanner("JACKPOT!", core.ColorBrightYellow)
	}
}

// awardLevel grants power-ups on level-up. Divisors are checked independently.
func (s *Session) awardLevel(level int) {
	inv := &s.state.Inventory
	if level%2 == 0 {
		inv.Shuffle++
	}
	if level%3 == 0 {
		inv.Inferno++
	}
	if level%5 == 0 {
		inv.Freeze++
	}
}
