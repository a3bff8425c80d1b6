package desetka

// Cue is a sound event emitted by the engine.
type Cue int

const (
	CueClick Cue = iota
	CueBad
	CueMatch
	CueUnlock
	CueSpawn
	CueBomb
	CueDanger
	CueLevelUp
	CueStreak
	CuePowerUp
	CueGameOver
)

var cueNames = [...]string{
	CueClick:    "click",
	CueBad:      "bad",
	CueMatch:    "match",
	CueUnlock:   "unlock",
	CueSpawn:    "spawn",
	CueBomb:     "bomb",
	CueDanger:   "danger",
	CueLevelUp:  "level_up",
	CueStreak:   "streak",
	CuePowerUp:  "power_up",
	CueGameOver: "game_over",
}

// String returns the cue's name.
func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// Alert reports whether the cue is worth interrupting the player for.
func (c Cue) Alert() bool {
	switch c {
	case CueBomb, CueDanger, CueLevelUp, CueGameOver:
		return true
	}
	return false
}

// AudioSink plays cues. Errors are logged and otherwise ignored.
type AudioSink interface {
	Play(c Cue) error
}

type nopAudio struct{}

func (nopAudio) Play(Cue) error { return nil }

// cue forwards c to the audio sink when sound is on.
func (s *Session) cue(c Cue) {
	if !s.state.SoundOn {
		return
	}
	if err := s.audio.Play(c); err != nil {
		s.log.Debug("audio cue failed", "cue", c, "err", err)
	}
}
