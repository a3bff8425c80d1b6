package desetka

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/desetka/internal/config"
)

// scriptedRand replays fixed draws. Exhausted Intn returns 0 and exhausted
// Float64 returns 0.99, which never selects a special.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// recordingAudio keeps every cue and optionally fails.
type recordingAudio struct {
	cues []Cue
	err  error
}

func (a *recordingAudio) Play(c Cue) error {
	a.cues = append(a.cues, c)
	return a.err
}

func (a *recordingAudio) count(c Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

var errAudio = errors.New("no audio device")

// newTestSession starts a session and replaces its board with rows.
// Rows are bottom-aligned; see parseGrid for the cell syntax.
func newTestSession(t *testing.T, rows ...string) (*Session, *recordingAudio) {
	t.Helper()
	return newTestSessionWith(t, config.DefaultDesetkaConfig(), rows...)
}

func newTestSessionWith(t *testing.T, cfg config.DesetkaConfig, rows ...string) (*Session, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	s := NewSession(cfg, rand.New(rand.NewSource(1)), WithAudio(audio))
	s.Start()
	s.grid = parseGrid(t, cfg.Board.Rows, cfg.Board.Cols, rows)
	s.grid.UpdateFreeze()
	s.refreshHint()
	audio.cues = nil
	return s, audio
}

// parseGrid builds a grid from whitespace separated tokens:
// "." empty, "7" plain, "7L" locked, "7B" or "7B2" bomb with timer,
// "7J" joker, "7I" ice.
func parseGrid(t *testing.T, rows, cols int, lines []string) *Grid {
	t.Helper()
	if len(lines) > rows {
		t.Fatalf("parseGrid: %d lines for %d rows", len(lines), rows)
	}
	g := NewGrid(rows, cols)
	offset := rows - len(lines)
	var id uint64
	for i, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) != cols {
			t.Fatalf("parseGrid: line %q has %d tokens, want %d", line, len(tokens), cols)
		}
		for col, tok := range tokens {
			if tok == "." {
				continue
			}
			id++
			c := &Cell{ID: id, Row: offset + i, Col: col, Value: int(tok[0] - '0')}
			if c.Value < 1 || c.Value > 9 {
				t.Fatalf("parseGrid: bad value in %q", tok)
			}
			if len(tok) > 1 {
				switch tok[1] {
				case 'L':
					c.Special, c.Locked = SpecialLocked, true
				case 'B':
					c.Special, c.BombTimer = SpecialBomb, 3
					if len(tok) > 2 {
						n, err := strconv.Atoi(tok[2:])
						if err != nil {
							t.Fatalf("parseGrid: bad bomb timer in %q", tok)
						}
						c.BombTimer = n
					}
				case 'J':
					c.Special = SpecialJoker
				case 'I':
					c.Special = SpecialIce
				default:
					t.Fatalf("parseGrid: unknown special in %q", tok)
				}
			}
			g.Place(c)
		}
	}
	return g
}

// assertSettled fails when any column has an empty slot below an occupied one.
func assertSettled(t *testing.T, g *Grid) {
	t.Helper()
	for c := 0; c < g.Cols(); c++ {
		seen := false
		for r := 0; r < g.Rows(); r++ {
			cell := g.At(r, c)
			if cell != nil {
				seen = true
				if cell.Row != r || cell.Col != c {
					t.Fatalf("cell at (%d,%d) thinks it is at (%d,%d)", r, c, cell.Row, cell.Col)
				}
			} else if seen {
				t.Fatalf("gap at (%d,%d) below an occupied slot\n%s", r, c, BoardString(g))
			}
		}
	}
}
