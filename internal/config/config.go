// Package config provides YAML tuning for the desetka engine: board size,
// timers, scoring constants, special-cell odds and the spawn ramp.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DesetkaConfig contains every tuning constant of the game.
type DesetkaConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Rules      RulesConfig      `yaml:"rules"`
	Specials   SpecialsConfig   `yaml:"specials"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	Cols        int `yaml:"cols"`
	Rows        int `yaml:"rows"`
	InitialRows int `yaml:"initial_rows"` // Filled rows at game start
}

// TimingConfig defines the timers driven by the frame clock.
type TimingConfig struct {
	ComboWindow      time.Duration `yaml:"combo_window"`
	StreakDuration   time.Duration `yaml:"streak_duration"`
	FreezeDuration   time.Duration `yaml:"freeze_duration"`
	HintIdle         time.Duration `yaml:"hint_idle"`          // Idle time before the hint is shown
	HintDelay        time.Duration `yaml:"hint_delay"`         // Settle delay before re-hinting after a match
	AutoShuffleDelay time.Duration `yaml:"auto_shuffle_delay"` // Extra delay before the deadlock breaker
	ShuffleHintDelay time.Duration `yaml:"shuffle_hint_delay"` // Re-hint delay after an auto-shuffle
	BombDelay        time.Duration `yaml:"bomb_delay"`         // Spawn continuation after a detonation
	HypeCooldown     time.Duration `yaml:"hype_cooldown"`
	BannerDuration   time.Duration `yaml:"banner_duration"`
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	SameBase         int     `yaml:"same_base"`
	CrossBase        int     `yaml:"cross_base"`
	DistanceBonus    float64 `yaml:"distance_bonus"` // Points per unit of Manhattan distance
	BombPerCell      int     `yaml:"bomb_per_cell"`
	InfernoPerCell   int     `yaml:"inferno_per_cell"`
	LevelStep        int     `yaml:"level_step"` // Score per level
	StreakMultiplier float64 `yaml:"streak_multiplier"`
}

// RulesConfig defines match and alert thresholds.
type RulesConfig struct {
	SameMaxDistance int  `yaml:"same_max_distance"`
	SameBuildsCombo bool `yaml:"same_builds_combo"` // Same-value matches grow combo and streak
	StreakGoal      int  `yaml:"streak_goal"`
	LastStandRow    int  `yaml:"last_stand_row"`
	DangerRow       int  `yaml:"danger_row"`
	DangerCells     int  `yaml:"danger_cells"` // Danger cue fires above this many cells
}

// SpecialsConfig defines the level-gated special-cell draw.
// Chances are upper bounds of bands checked against one draw in [0,1).
type SpecialsConfig struct {
	MinLevel     int     `yaml:"min_level"`
	BombLevel    int     `yaml:"bomb_level"`
	IceLevel     int     `yaml:"ice_level"`
	IceChance    float64 `yaml:"ice_chance"`
	BombChance   float64 `yaml:"bomb_chance"`
	JokerChance  float64 `yaml:"joker_chance"`
	LockedChance float64 `yaml:"locked_chance"`
	BombFuse     int     `yaml:"bomb_fuse"`
}

// DifficultyConfig defines the spawn-interval ramp.
type DifficultyConfig struct {
	BaseInterval    time.Duration `yaml:"base_interval"`
	Factor          float64       `yaml:"factor"`            // Interval multiplier per level
	LastStandFactor float64       `yaml:"last_stand_factor"` // Interval multiplier while in last stand
}

// Validate rejects tuning that would break engine invariants.
func (c DesetkaConfig) Validate() error {
	var errs []error

	if c.Board.Cols < 2 {
		errs = append(errs, fmt.Errorf("board.cols must be at least 2, got %d", c.Board.Cols))
	}
	if c.Board.Rows < 4 {
		errs = append(errs, fmt.Errorf("board.rows must be at least 4, got %d", c.Board.Rows))
	}
	if c.Board.InitialRows < 0 || c.Board.InitialRows >= c.Board.Rows {
		errs = append(errs, fmt.Errorf("board.initial_rows must be in [0, rows), got %d", c.Board.InitialRows))
	}
	if c.Rules.LastStandRow < 0 || c.Rules.LastStandRow >= c.Board.Rows {
		errs = append(errs, fmt.Errorf("rules.last_stand_row out of range: %d", c.Rules.LastStandRow))
	}
	if c.Rules.DangerRow < 0 || c.Rules.DangerRow >= c.Board.Rows {
		errs = append(errs, fmt.Errorf("rules.danger_row out of range: %d", c.Rules.DangerRow))
	}
	if c.Rules.StreakGoal < 1 {
		errs = append(errs, errors.New("rules.streak_goal must be positive"))
	}
	if c.Scoring.LevelStep <= 0 {
		errs = append(errs, errors.New("scoring.level_step must be positive"))
	}
	if c.Difficulty.BaseInterval <= 0 {
		errs = append(errs, errors.New("difficulty.base_interval must be positive"))
	}
	if c.Difficulty.Factor <= 0 || c.Difficulty.Factor > 1 {
		errs = append(errs, fmt.Errorf("difficulty.factor must be in (0, 1], got %v", c.Difficulty.Factor))
	}
	if c.Difficulty.LastStandFactor < 1 {
		errs = append(errs, fmt.Errorf("difficulty.last_stand_factor must be >= 1, got %v", c.Difficulty.LastStandFactor))
	}
	if c.Timing.ComboWindow <= 0 || c.Timing.StreakDuration <= 0 || c.Timing.FreezeDuration <= 0 {
		errs = append(errs, errors.New("timing: combo, streak and freeze durations must be positive"))
	}
	if c.Specials.BombFuse < 1 {
		errs = append(errs, errors.New("specials.bomb_fuse must be positive"))
	}
	for name, p := range map[string]float64{
		"ice_chance":    c.Specials.IceChance,
		"bomb_chance":   c.Specials.BombChance,
		"joker_chance":  c.Specials.JokerChance,
		"locked_chance": c.Specials.LockedChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("specials.%s must be in [0, 1], got %v", name, p))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid desetka config: %w", errors.Join(errs...))
	}
	return nil
}
