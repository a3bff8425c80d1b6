package desetka

import "time"

// clock turns monotonic frame timestamps into deltas.
type clock struct {
	last     time.Duration
	anchored bool
}

// delta returns the time since the previous call. The first call after a
// reset anchors the clock and returns zero; time never runs backwards.
func (c *clock) delta(now time.Duration) time.Duration {
	if !c.anchored {
		c.last = now
		c.anchored = true
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// decay subtracts dt from d without going below zero.
func decay(d, dt time.Duration) time.Duration {
	if dt >= d {
		return 0
	}
	return d - dt
}

// Frame advances the run to timestamp now.
// Nothing happens while paused or after game over.
func (s *Session) Frame(now time.Duration) {
	if !s.active() {
		return
	}
	if dt := s.clock.delta(now); dt > 0 {
		s.advance(dt)
	}
}

// TogglePause pauses or resumes a running game.
// Resuming re-anchors the clock so the pause is not counted.
func (s *Session) TogglePause() {
	if !s.state.Running {
		return
	}
	s.state.Paused = !s.state.Paused
	if !s.state.Paused {
		s.clock.anchored = false
	}
}

// advance runs one frame of dt.
// Order: combo, streak mode, freeze, particles, banner, hint idle, tasks, spawn.
func (s *Session) advance(dt time.Duration) {
	st := &s.state
	s.elapsed += dt

	if st.Combo > 0 {
		st.ComboTimer = decay(st.ComboTimer, dt)
		if st.ComboTimer == 0 {
			st.Combo = 0
			st.Streak = 0
		}
	}

	if st.StreakMode {
		st.StreakTimer = decay(st.StreakTimer, dt)
		if st.StreakTimer == 0 {
			st.StreakMode = false
			st.Streak = 0
		}
	}

	if st.FreezeActive {
		st.FreezeTimer = decay(st.FreezeTimer, dt)
		if st.FreezeTimer == 0 {
			st.FreezeActive = false
		}
	}

	st.Particles = stepParticles(st.Particles, dt)
	st.Banner.Remaining = decay(st.Banner.Remaining, dt)

	if st.HasHint {
		st.HintTimer += dt
	}

	for _, kind := range s.tasks.advance(dt) {
		s.runTask(kind)
	}

	if st.FreezeActive {
		return
	}
	st.SpawnTimer += dt
	if st.SpawnTimer >= st.SpawnInterval {
		s.SpawnRow()
		st.SpawnTimer = 0
	}
}

func (s *Session) runTask(kind taskKind) {
	switch kind {
	case taskFinishSpawn:
		s.finishSpawn()
	case taskSettleHint:
		s.refreshHint()
		if !s.state.HasHint {
			s.tasks.schedule(taskAutoShuffle, s.cfg.Timing.AutoShuffleDelay)
		}
	case taskAutoShuffle:
		s.AutoShuffle()
	case taskHint:
		s.refreshHint()
	}
}
