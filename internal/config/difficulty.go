package config

import (
	"math"
	"time"
)

// Ramp calculates the spawn interval from the current level.
type Ramp struct {
	cfg DifficultyConfig
}

// NewRamp creates a ramp for the given difficulty settings.
func NewRamp(cfg DifficultyConfig) *Ramp {
	return &Ramp{cfg: cfg}
}

// Base returns the level 1 interval.
func (r *Ramp) Base() time.Duration {
	return r.cfg.BaseInterval
}

// Interval returns base * factor^(level-1). There is no floor beyond the formula itself.
func (r *Ramp) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	scale := math.Pow(r.cfg.Factor, float64(level-1))
	return time.Duration(float64(r.cfg.BaseInterval) * scale)
}

// LastStand stretches the current interval when the board nears the top.
func (r *Ramp) LastStand(current time.Duration) time.Duration {
	return time.Duration(float64(current) * r.cfg.LastStandFactor)
}
