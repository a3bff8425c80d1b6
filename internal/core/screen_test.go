package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(2, 1, '7', ColorBrightYellow)

	c := s.GetCell(2, 1)
	if c.Rune != '7' || c.Color != ColorBrightYellow {
		t.Errorf("GetCell(2, 1) = %+v, want '7' bright yellow", c)
	}

	// Out-of-bounds writes are dropped, reads return blank.
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(6, 0, 'x', ColorRed)
	s.SetColored(0, 3, 'x', ColorRed)
	if s.Get(-1, 0) != ' ' || s.GetCell(6, 0).Color != ColorDefault {
		t.Error("out-of-bounds access should read as blank")
	}
}

func TestScreenDrawTextClipsAndColors(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "LEVEL", ColorCyan)

	if got := s.Row(0); got != "     LEV" {
		t.Errorf("Row(0) = %q, want clipped text", got)
	}
	if s.GetCell(6, 0).Color != ColorCyan {
		t.Error("drawn text should carry its color")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawTextCentered(0, "ČAS")

	// 3 runes in 12 columns start at x=4 regardless of byte length.
	if s.Get(4, 0) != 'Č' || s.Get(6, 0) != 'S' {
		t.Errorf("Row(0) = %q, want centered text at x=4", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColored(NewRect(0, 0, 6, 4), ColorGray)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, want %q", y, got, line)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box border should be gray")
	}
}

func TestScreenDrawRectAndHLine(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawRectColored(NewRect(1, 0, 2, 2), '#', ColorRed)
	s.DrawHLine(0, 2, 5, '=', ColorGreen)

	if got := s.String(); got != " ##  \n ##  \n=====" {
		t.Errorf("String() = %q", got)
	}
	if s.GetCell(4, 2).Color != ColorGreen {
		t.Error("hline should be green")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawTextColored(0, 0, "abc", ColorMagenta)
	s.Clear()

	if s.Row(0) != "   " || s.GetCell(1, 0).Color != ColorDefault {
		t.Error("Clear should reset runes and colors")
	}

	s.Fill('.')
	if s.Row(0) != "..." {
		t.Errorf("Fill: Row(0) = %q", s.Row(0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "Hello", ColorBlue)

	s.Resize(4, 2)
	if s.Row(0) != "Hell" {
		t.Errorf("after shrink Row(0) = %q", s.Row(0))
	}

	s.Resize(8, 3)
	if !strings.HasPrefix(s.Row(0), "Hell") || s.GetCell(0, 0).Color != ColorBlue {
		t.Errorf("after grow Row(0) = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 8) {
		t.Error("out-of-range Row should be blank")
	}
}
