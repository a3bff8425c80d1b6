package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/desetka.yaml
var defaultDesetkaYAML []byte

// DefaultDesetkaConfig returns the built-in tuning.
// It mirrors defaults/desetka.yaml and is used when the embedded file fails to parse.
func DefaultDesetkaConfig() DesetkaConfig {
	return DesetkaConfig{
		Board: BoardConfig{
			Cols:        6,
			Rows:        8,
			InitialRows: 3,
		},
		Timing: TimingConfig{
			ComboWindow:      2200 * time.Millisecond,
			StreakDuration:   5 * time.Second,
			FreezeDuration:   15 * time.Second,
			HintIdle:         4 * time.Second,
			HintDelay:        200 * time.Millisecond,
			AutoShuffleDelay: 500 * time.Millisecond,
			ShuffleHintDelay: 300 * time.Millisecond,
			BombDelay:        300 * time.Millisecond,
			HypeCooldown:     800 * time.Millisecond,
			BannerDuration:   1200 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			SameBase:         30,
			CrossBase:        50,
			DistanceBonus:    8,
			BombPerCell:      15,
			InfernoPerCell:   10,
			LevelStep:        600,
			StreakMultiplier: 2,
		},
		Rules: RulesConfig{
			SameMaxDistance: 2,
			StreakGoal:      5,
			LastStandRow:    2,
			DangerRow:       1,
			DangerCells:     2,
		},
		Specials: SpecialsConfig{
			MinLevel:     3,
			BombLevel:    5,
			IceLevel:     7,
			IceChance:    0.04,
			BombChance:   0.09,
			JokerChance:  0.06,
			LockedChance: 0.14,
			BombFuse:     3,
		},
		Difficulty: DifficultyConfig{
			BaseInterval:    11500 * time.Millisecond,
			Factor:          0.93,
			LastStandFactor: 1.5,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultDesetkaYAML
}
