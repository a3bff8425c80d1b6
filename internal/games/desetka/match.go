package desetka

import (
	"math"

	"github.com/vovakirdan/desetka/internal/core"
)

// Rules holds the match predicate parameters.
type Rules struct {
	// SameMaxDistance limits same-value matches to this Manhattan distance.
	// Cross-sum matches work at any distance.
	SameMaxDistance int

	// SameBuildsCombo lets same-value matches grow combo and streak.
	// Off, they only read the current multiplier.
	SameBuildsCombo bool
}

// Distance returns the Manhattan distance between two cells.
func Distance(a, b *Cell) int {
	return core.Abs(a.Row-b.Row) + core.Abs(a.Col-b.Col)
}

// valuesMatch is the bare value rule: sum to ten, or equal values close enough.
// Specials and flags are ignored.
func valuesMatch(a, b *Cell, rules Rules) bool {
	if a.Value+b.Value == 10 {
		return true
	}
	return a.Value == b.Value && Distance(a, b) <= rules.SameMaxDistance
}

// IsValid reports whether a and b can be matched and cleared.
func IsValid(a, b *Cell, rules Rules) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if a.Frozen || b.Frozen || a.Locked || b.Locked {
		return false
	}
	if a.isJoker() || b.isJoker() {
		return true
	}
	return valuesMatch(a, b, rules)
}

// CanUnlock reports whether a gesture from a to b would unlock a locked endpoint.
// The pair must be valid once the locks are ignored.
func CanUnlock(a, b *Cell, rules Rules) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if !a.Locked && !b.Locked {
		return false
	}
	if a.Frozen || b.Frozen {
		return false
	}
	return a.isJoker() || b.isJoker() || valuesMatch(a, b, rules)
}

// Pair is two cells, typically the current hint.
type Pair struct {
	A, B *Cell
}

// Has reports whether c is one of the pair.
func (p Pair) Has(c *Cell) bool {
	return c != nil && (p.A == c || p.B == c)
}

// FindHint returns the valid pair with the smallest distance.
// Cells are scanned in row-major order and the first pair found wins ties.
func FindHint(g *Grid, rules Rules) (Pair, bool) {
	cells := g.Cells()
	best := Pair{}
	bestDist := math.MaxInt
	for i, a := range cells {
		if a.Frozen {
			continue
		}
		for _, b := range cells[i+1:] {
			if !IsValid(a, b, rules) {
				continue
			}
			if d := Distance(a, b); d < bestDist {
				bestDist = d
				best = Pair{A: a, B: b}
			}
		}
	}
	return best, best.A != nil
}

// MatchKind classifies a resolved match.
type MatchKind int

const (
	MatchNone   MatchKind = iota
	MatchUnlock           // Gesture consumed to unlock, nothing cleared
	MatchSame             // Equal values
	MatchCross            // Values sum to ten
	MatchJoker            // A joker was involved
)

// String returns the kind's name.
func (k MatchKind) String() string {
	switch k {
	case MatchUnlock:
		return "unlock"
	case MatchSame:
		return "same"
	case MatchCross:
		return "cross"
	case MatchJoker:
		return "joker"
	default:
		return "none"
	}
}

// MatchResult describes what ProcessMatch did.
type MatchResult struct {
	Kind       MatchKind
	Distance   int
	Base       int // Points before multipliers
	Multiplier int // Combo multiplier applied
	Points     int
	Cleared    int // Extra cells cleared by a defused bomb
	LevelUp    bool
}

// ProcessMatch resolves a gesture between a and b.
// Callers check IsValid or CanUnlock first.
func (s *Session) ProcessMatch(a, b *Cell) MatchResult {
	st := &s.state
	res := MatchResult{Distance: Distance(a, b)}

	if a.Locked || b.Locked {
		for _, c := range []*Cell{a, b} {
			if c.Locked {
				c.strip()
				s.emit(c, core.ColorGray, 6)
			}
		}
		res.Kind = MatchUnlock
		s.cue(CueUnlock)
		s.refreshHint()
		return res
	}

	for _, bomb := range []*Cell{a, b} {
		if bomb.Special != SpecialBomb {
			continue
		}
		for col := 0; col < s.grid.Cols(); col++ {
			c := s.grid.At(bomb.Row, col)
			if c == nil || c == a || c == b {
				continue
			}
			s.grid.Remove(c.Row, c.Col)
			s.emit(c, core.ColorBrightRed, 8)
			res.Cleared++
		}
	}

	isSame := a.Value == b.Value && !a.isJoker() && !b.isJoker() && a.Value+b.Value != 10
	switch {
	case a.isJoker() || b.isJoker():
		res.Kind = MatchJoker
	case isSame:
		res.Kind = MatchSame
	default:
		res.Kind = MatchCross
	}

	burst := 16
	if isSame {
		burst = 8
	}
	for _, c := range []*Cell{a, b} {
		s.grid.Remove(c.Row, c.Col)
		s.emit(c, ValueColor(c.Value), burst)
	}

	base := s.cfg.Scoring.CrossBase
	if isSame {
		base = s.cfg.Scoring.SameBase
	}
	base += int(math.Floor(float64(res.Distance) * s.cfg.Scoring.DistanceBonus))
	base += res.Cleared * s.cfg.Scoring.BombPerCell
	res.Base = base

	builds := !isSame || s.rules.SameBuildsCombo
	if !builds {
		res.Multiplier = s.comboMultiplier()
	} else {
		res.Multiplier = s.registerCombo()
	}
	streakMult := 1.0
	if st.StreakMode {
		streakMult = s.cfg.Scoring.StreakMultiplier
	}
	res.Points = int(math.Round(float64(base) * float64(res.Multiplier) * streakMult))
	st.Score += res.Points
	st.LastPoints = res.Points
	s.cue(CueMatch)

	if builds {
		if st.Combo >= 2 {
			s.showComboHype(st.Combo)
		}
		s.awardCombo(st.Combo)

		st.Streak++
		if st.Streak >= s.cfg.Rules.StreakGoal && !st.StreakMode {
			s.activateStreakMode()
		}
	}

	res.LevelUp = s.checkLevel()

	s.grid.Gravity()
	s.grid.UpdateFreeze()
	s.invalidateHint()
	s.tasks.schedule(taskSettleHint, s.cfg.Timing.HintDelay)
	return res
}

func (s *Session) comboMultiplier() int {
	if s.state.Combo >= 2 {
		return s.state.Combo
	}
	return 1
}

func (s *Session) registerCombo() int {
	s.state.Combo++
	s.state.ComboTimer = s.cfg.Timing.ComboWindow
	return s.comboMultiplier()
}

func (s *Session) activateStreakMode() {
	s.state.StreakMode = true
	s.state.StreakTimer = s.cfg.Timing.StreakDuration
	s.showBanner("DESETKA x2", core.ColorBrightYellow)
	s.cue(CueStreak)
	s.log.Debug("streak mode", "score", s.state.Score)
}

// checkLevel raises the level from the score and applies level rewards.
func (s *Session) checkLevel() bool {
	st := &s.state
	level := st.Score/s.cfg.Scoring.LevelStep + 1
	if level <= st.Level {
		return false
	}
	st.Level = level
	if !st.LastStand {
		st.SpawnInterval = s.ramp.Interval(level)
	}
	s.cue(CueLevelUp)
	s.awardLevel(level)
	s.log.Info("level up", "level", level, "interval", st.SpawnInterval)
	return true
}
