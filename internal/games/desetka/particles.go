package desetka

import (
	"math"
	"time"

	"github.com/vovakirdan/desetka/internal/core"
)

// Particle coordinates are in board cells; (0,0) is the top-left corner of the board.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at birth, removed at 0
	Decay  float64 // Life lost per frame
	Color  core.Color
}

const (
	frameTime       = time.Second / 60
	particleScale   = 1.0 / 40 // Cell units per original pixel
	particleGravity = 0.1 * particleScale
)

// emit spawns a burst of n particles from the centre of c.
func (s *Session) emit(c *Cell, color core.Color, n int) {
	s.emitAt(float64(c.Col)+0.5, float64(c.Row)+0.5, color, n)
}

func (s *Session) emitAt(x, y float64, color core.Color, n int) {
	for i := 0; i < n; i++ {
		angle := 2*math.Pi/float64(n)*float64(i) + s.rng.Float64()*0.4
		speed := (1.5 + s.rng.Float64()*3.5) * particleScale
		s.state.Particles = append(s.state.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Decay: 0.015 + s.rng.Float64()*0.02,
			Color: color,
		})
	}
}

// stepParticles advances particles by dt and drops dead ones.
func stepParticles(ps []Particle, dt time.Duration) []Particle {
	frames := float64(dt) / float64(frameTime)
	kept := ps[:0]
	for _, p := range ps {
		p.X += p.VX * frames
		p.Y += p.VY * frames
		p.VY += particleGravity * frames
		p.Life -= p.Decay * frames
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	return kept
}

// Banner is a short-lived message over the board.
type Banner struct {
	Text      string
	Color     core.Color
	Remaining time.Duration
}

// Visible reports whether the banner should be drawn.
func (b Banner) Visible() bool {
	return b.Text != "" && b.Remaining > 0
}

func (s *Session) showBanner(text string, color core.Color) {
	s.state.Banner = Banner{Text: text, Color: color, Remaining: s.cfg.Timing.BannerDuration}
}

var comboHypes = []struct {
	min   int
	text  string
	color core.Color
}{
	{2, "NICE!", core.ColorBrightGreen},
	{3, "BRAVO!", core.ColorBrightCyan},
	{4, "SUPER!", core.ColorBrightBlue},
	{5, "ODLIČNO!", core.ColorBrightMagenta},
	{7, "BRUTAL!", core.ColorBrightRed},
	{10, "LEGENDA!", core.ColorBrightYellow},
	{15, "BOGOVSKI!", core.ColorBrightWhite},
}

// hypeFor returns the hype word for a combo count, if any.
func hypeFor(combo int) (string, core.Color, bool) {
	for i := len(comboHypes) - 1; i >= 0; i-- {
		if combo >= comboHypes[i].min {
			return comboHypes[i].text, comboHypes[i].color, true
		}
	}
	return "", core.ColorDefault, false
}

// showComboHype shows a hype word, at most once per cooldown.
func (s *Session) showComboHype(combo int) {
	if s.hypeShown && s.elapsed-s.lastHype < s.cfg.Timing.HypeCooldown {
		return
	}
	text, color, ok := hypeFor(combo)
	if !ok {
		return
	}
	s.hypeShown = true
	s.lastHype = s.elapsed
	s.showBanner(text, color)

	if combo >= 4 {
		s.emitAt(float64(s.grid.Cols())/2, float64(s.grid.Rows())/2, color, combo*3)
	}
}
