package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/desetka/internal/core"
)

// ansiCodes are the terminal colour codes behind core.Color.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette maps screen colours to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the style table. With bold set, bright colours are also
// drawn bold.
func NewPalette(bold bool) Palette {
	p := Palette{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		if bold && c.Bright() {
			st = st.Bold(true)
		}
		p[c] = st
	}
	return p
}

var defaultPalette = NewPalette(true)

// RenderScreen converts a Screen buffer to a styled string with the default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p[c]; ok {
		return st
	}
	return p[core.ColorDefault]
}
