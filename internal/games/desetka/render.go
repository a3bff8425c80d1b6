package desetka

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/desetka/internal/core"
)

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	st := g.session.State()
	g.renderHUD(dst, st)
	g.renderGrid(dst, st)
	g.renderCells(dst, st)
	g.renderParticles(dst, st)
	g.renderFooter(dst, st)

	switch {
	case st.Over:
		g.renderGameOver(dst)
	case st.Paused:
		g.renderOverlay(dst, core.ColorBrightWhite, "PAUSED", "P to resume")
	case st.Banner.Visible():
		mid := g.layout.Board.Y + g.layout.Board.H/2
		g.drawCentered(dst, mid, " "+st.Banner.Text+" ", st.Banner.Color)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, st State) {
	b := g.layout.Board

	dst.DrawTextColored(b.X, 0, "DESETKA", core.ColorBrightYellow)
	best := fmt.Sprintf("Best %d", max(st.Best, st.Score))
	dst.DrawTextColored(b.Right()-len(best), 0, best, core.ColorGray)
	score := fmt.Sprintf("%d", st.Score)
	g.drawCentered(dst, 0, score, core.ColorBrightWhite)

	status := fmt.Sprintf("Lvl %d", st.Level)
	if st.Combo >= 2 {
		status += fmt.Sprintf("  Combo x%d", st.Combo)
	} else {
		status += "  Combo -"
	}
	dst.DrawText(b.X, 1, status)
	switch {
	case st.StreakMode:
		mode := fmt.Sprintf("x2 %s", seconds(st.StreakTimer))
		dst.DrawTextColored(b.Right()-len(mode), 1, mode, core.ColorBrightYellow)
	case st.LastStand:
		dst.DrawTextColored(b.Right()-len("LAST STAND"), 1, "LAST STAND", core.ColorBrightRed)
	}

	g.renderTimerBar(dst, st)
}

// renderTimerBar shows how close the next row is, or the freeze countdown.
func (g *Game) renderTimerBar(dst *core.Screen, st State) {
	b := g.layout.Board
	if st.FreezeActive {
		label := "FROZEN " + seconds(st.FreezeTimer)
		dst.DrawHLine(b.X, 2, b.W, '░', core.ColorCyan)
		g.drawCentered(dst, 2, label, core.ColorBrightCyan)
		return
	}

	p := g.session.SpawnProgress()
	filled := int(p * float64(b.W))
	color := core.ColorGreen
	switch {
	case p > 0.8:
		color = core.ColorBrightRed
	case p > 0.5:
		color = core.ColorYellow
	}
	dst.DrawHLine(b.X, 2, filled, '█', color)
	dst.DrawHLine(b.X+filled, 2, b.W-filled, '░', core.ColorGray)
}

func (g *Game) renderGrid(dst *core.Screen, st State) {
	l := g.layout
	color := core.ColorGray
	if st.LastStand {
		color = core.ColorRed
	}

	for r := 0; r <= l.Rows; r++ {
		for c := 0; c <= l.Cols; c++ {
			x, y := l.CellOrigin(r, c)
			dst.SetColored(x, y, gridJoint(r, c, l.Rows, l.Cols), color)
			if c < l.Cols {
				dst.DrawHLine(x+1, y, l.CellW-1, '─', color)
			}
			if r < l.Rows {
				for dy := 1; dy < l.CellH; dy++ {
					dst.SetColored(x, y+dy, '│', color)
				}
			}
		}
	}
}

func gridJoint(r, c, rows, cols int) rune {
	switch {
	case r == 0 && c == 0:
		return '┌'
	case r == 0 && c == cols:
		return '┐'
	case r == rows && c == 0:
		return '└'
	case r == rows && c == cols:
		return '┘'
	case r == 0:
		return '┬'
	case r == rows:
		return '┴'
	case c == 0:
		return '├'
	case c == cols:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderCells(dst *core.Screen, st State) {
	l := g.layout
	hint := g.session.HintVisible()

	for _, c := range g.session.Grid().Cells() {
		text, color := cellLabel(c)
		switch {
		case st.Drag.Start == c || st.Drag.End == c:
			text, color = "›"+text+"‹", core.ColorBrightWhite
		case hint && st.Hint.Has(c):
			text, color = "+"+text+"+", core.ColorBrightGreen
		}

		x, y := l.CellOrigin(c.Row, c.Col)
		inner := l.CellW - 1
		n := utf8.RuneCountInString(text)
		if n > inner {
			text = string([]rune(text)[:inner])
			n = inner
		}
		dst.DrawTextColored(x+1+(inner-n)/2, y+1+(l.CellH-2)/2, text, color)
	}

	if g.cursorShown {
		x, y := l.CellOrigin(g.cursorRow, g.cursorCol)
		my := y + 1 + (l.CellH-2)/2
		dst.SetColored(x, my, '▸', core.ColorBrightYellow)
		dst.SetColored(x+l.CellW, my, '◂', core.ColorBrightYellow)
	}
}

// cellLabel returns the text and color of a cell without highlights.
func cellLabel(c *Cell) (string, core.Color) {
	v := fmt.Sprintf("%d", c.Value)
	switch {
	case c.Frozen:
		return "~" + v + "~", core.ColorGray
	case c.Special == SpecialLocked:
		return "#" + v, core.ColorGray
	case c.Special == SpecialBomb:
		color := core.ColorRed
		if c.BombTimer <= 1 {
			color = core.ColorBrightRed
		}
		return fmt.Sprintf("%s!%d", v, c.BombTimer), color
	case c.Special == SpecialJoker:
		return "J", core.ColorBrightMagenta
	case c.Special == SpecialIce:
		return "[" + v + "]", core.ColorBrightCyan
	}
	return v, ValueColor(c.Value)
}

// renderParticles draws live particles over empty board space.
func (g *Game) renderParticles(dst *core.Screen, st State) {
	b := g.layout.Board
	for _, p := range st.Particles {
		x, y := g.layout.ScreenPoint(p.X, p.Y)
		if x <= b.X || x >= b.Right()-1 || y <= b.Y || y >= b.Bottom()-1 {
			continue
		}
		if dst.Get(x, y) != ' ' {
			continue
		}
		r := '·'
		if p.Life > 0.6 {
			r = '*'
		}
		dst.SetColored(x, y, r, p.Color)
	}
}

func (g *Game) renderFooter(dst *core.Screen, st State) {
	b := g.layout.Board
	y := b.Bottom()

	inv := st.Inventory
	items := []struct {
		text  string
		count int
		color core.Color
	}{
		{"1 Shuffle", inv.Shuffle, core.ColorBrightCyan},
		{"2 Inferno", inv.Inferno, core.ColorOrange},
		{"3 Freeze", inv.Freeze, core.ColorBrightBlue},
	}
	x := b.X
	for _, it := range items {
		color := it.color
		if it.count == 0 {
			color = core.ColorGray
		}
		text := fmt.Sprintf("%s:%d", it.text, it.count)
		dst.DrawTextColored(x, y, text, color)
		x += len(text) + 2
	}

	sound := "on"
	if !st.SoundOn {
		sound = "off"
	}
	help := fmt.Sprintf("drag/space link  x cancel  p pause  m sound:%s  q quit", sound)
	g.drawCentered(dst, y+1, help, core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	summary, _ := g.session.Summary()
	lines := []string{"GAME OVER", fmt.Sprintf("Score %d  Level %d", summary.Score, summary.Level)}
	color := core.ColorBrightRed
	if summary.Record {
		lines = append(lines, "NEW RECORD!")
		color = core.ColorBrightYellow
	}
	lines = append(lines, "R to restart, Q to quit")
	g.renderOverlay(dst, color, lines...)
}

// renderOverlay draws a framed message box over the board centre.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	w += 4
	h := len(lines) + 2
	b := g.layout.Board
	box := core.NewRect(b.X+(b.W-w)/2, b.Y+(b.H-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)
	for i, l := range lines {
		pad := (w - 2 - utf8.RuneCountInString(l)) / 2
		dst.DrawTextColored(box.X+1+pad, box.Y+1+i, l, color)
	}
}

// drawCentered centres text over the board.
func (g *Game) drawCentered(dst *core.Screen, y int, text string, color core.Color) {
	b := g.layout.Board
	x := b.X + (b.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColored(x, y, text, color)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// BoardString renders the board as plain text, one line per row.
// Empty slots are dots; specials are suffixed L, B, J or I.
func BoardString(g *Grid) string {
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			cell := g.At(r, c)
			if cell == nil {
				sb.WriteString(". ")
				continue
			}
			sb.WriteByte(byte('0' + cell.Value))
			sb.WriteByte(specialMark[cell.Special])
		}
	}
	return sb.String()
}

var specialMark = map[Special]byte{
	SpecialNone:   ' ',
	SpecialLocked: 'L',
	SpecialBomb:   'B',
	SpecialJoker:  'J',
	SpecialIce:    'I',
}
