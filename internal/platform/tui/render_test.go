package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/desetka/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "score")
	s.DrawTextColored(0, 1, "7", core.ColorBrightYellow)
	s.DrawTextColored(2, 1, "3", core.ColorCyan)
	s.SetColored(11, 2, '*', core.Color(200)) // unknown colour falls back to default

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, want 12", i, w)
		}
	}
	for _, want := range []string{"score", "7", "3", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestNewPalette(t *testing.T) {
	bold := NewPalette(true)
	plain := NewPalette(false)

	if len(bold) != len(ansiCodes)+1 {
		t.Errorf("palette has %d styles, want %d", len(bold), len(ansiCodes)+1)
	}
	if !bold[core.ColorBrightRed].GetBold() {
		t.Error("bright colours should be bold")
	}
	if bold[core.ColorRed].GetBold() || bold[core.ColorOrange].GetBold() {
		t.Error("normal colours should not be bold")
	}
	if plain[core.ColorBrightRed].GetBold() {
		t.Error("plain palette should not use bold")
	}
	if plain.style(core.Color(200)).GetBold() {
		t.Error("unknown colours use the default style")
	}
}
