package desetka

import (
	"github.com/vovakirdan/desetka/internal/config"
	"github.com/vovakirdan/desetka/internal/core"
)

// Special is a modifier carried by a cell.
type Special int

const (
	SpecialNone   Special = iota
	SpecialLocked         // Needs one matching gesture to unlock before it can be cleared
	SpecialBomb           // Counts down on every spawn, clears its row when defused
	SpecialJoker          // Matches any value
	SpecialIce            // Freezes its orthogonal neighbours
)

// String returns the special's name.
func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "none"
	case SpecialLocked:
		return "locked"
	case SpecialBomb:
		return "bomb"
	case SpecialJoker:
		return "joker"
	case SpecialIce:
		return "ice"
	default:
		return "unknown"
	}
}

// Cell is a numbered tile on the board.
// Row and Col always equal the slot the cell occupies.
type Cell struct {
	ID        uint64
	Value     int // 1..9
	Row, Col  int
	Special   Special
	Locked    bool
	Frozen    bool
	BombTimer int // Spawns left before detonation
}

func (c *Cell) isJoker() bool { return c.Special == SpecialJoker }

// strip removes any special modifier from the cell.
func (c *Cell) strip() {
	c.Special = SpecialNone
	c.Locked = false
	c.BombTimer = 0
}

// Rand is the random source used by the engine.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// CellFactory creates cells with random values and level-gated specials.
type CellFactory struct {
	rng    Rand
	cfg    config.SpecialsConfig
	nextID uint64
}

// NewCellFactory creates a factory drawing from rng.
func NewCellFactory(rng Rand, cfg config.SpecialsConfig) *CellFactory {
	return &CellFactory{rng: rng, cfg: cfg}
}

// Make creates a cell at (row, col) with a value uniform in [1,9].
func (f *CellFactory) Make(row, col int, sp Special) *Cell {
	f.nextID++
	c := &Cell{
		ID:      f.nextID,
		Value:   f.rng.Intn(9) + 1,
		Row:     row,
		Col:     col,
		Special: sp,
		Locked:  sp == SpecialLocked,
	}
	if sp == SpecialBomb {
		c.BombTimer = f.cfg.BombFuse
	}
	return c
}

// Special draws a special kind for a new cell at the given level.
// One draw is checked against the bands in order: ice, bomb, joker, locked.
func (f *CellFactory) Special(level int) Special {
	if level < f.cfg.MinLevel {
		return SpecialNone
	}
	r := f.rng.Float64()
	switch {
	case level >= f.cfg.IceLevel && r < f.cfg.IceChance:
		return SpecialIce
	case level >= f.cfg.BombLevel && r < f.cfg.BombChance:
		return SpecialBomb
	case r < f.cfg.JokerChance:
		return SpecialJoker
	case r < f.cfg.LockedChance:
		return SpecialLocked
	}
	return SpecialNone
}

var valueColors = [10]core.Color{
	core.ColorDefault,
	core.ColorBlue,
	core.ColorBrightBlue,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorRed,
	core.ColorOrange,
	core.ColorBrightRed,
}

// ValueColor returns the display color of a cell value.
func ValueColor(v int) core.Color {
	if v < 1 || v > 9 {
		return core.ColorDefault
	}
	return valueColors[v]
}
