package desetka

import "github.com/vovakirdan/desetka/internal/core"

const (
	hudTop    = 3 // Title, status and timer lines above the board
	hudBottom = 2 // Power-up and key help lines below the board
)

// Layout places the board on the screen.
// Each slot is CellW x CellH characters including its left and top grid line.
type Layout struct {
	Board        core.Rect
	CellW, CellH int
	Rows, Cols   int
}

// ComputeLayout picks the largest cell size that fits and centres the board.
// ok is false when even the smallest board does not fit.
func ComputeLayout(screenW, screenH, rows, cols int) (l Layout, ok bool) {
	sizes := [][2]int{{7, 3}, {5, 2}}
	for _, sz := range sizes {
		w := cols*sz[0] + 1
		h := rows*sz[1] + 1
		if w <= screenW && h+hudTop+hudBottom <= screenH {
			x := (screenW - w) / 2
			return Layout{
				Board: core.NewRect(x, hudTop, w, h),
				CellW: sz[0],
				CellH: sz[1],
				Rows:  rows,
				Cols:  cols,
			}, true
		}
	}
	return Layout{Rows: rows, Cols: cols}, false
}

// CellAt maps a screen position to a board slot.
// Grid lines belong to the slot to their right and below.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	rx, ry := x-l.Board.X, y-l.Board.Y
	if rx < 0 || ry < 0 || l.CellW == 0 || l.CellH == 0 {
		return -1, -1, false
	}
	col, row = rx/l.CellW, ry/l.CellH
	if row >= l.Rows || col >= l.Cols {
		return -1, -1, false
	}
	return row, col, true
}

// BoardPoint converts a screen position to fractional board cells.
func (l Layout) BoardPoint(x, y int) (bx, by float64) {
	if l.CellW == 0 || l.CellH == 0 {
		return 0, 0
	}
	return float64(x-l.Board.X) / float64(l.CellW), float64(y-l.Board.Y) / float64(l.CellH)
}

// CellOrigin returns the screen position of the slot's top-left grid corner.
func (l Layout) CellOrigin(row, col int) (x, y int) {
	return l.Board.X + col*l.CellW, l.Board.Y + row*l.CellH
}

// ScreenPoint converts fractional board cells to a screen position.
func (l Layout) ScreenPoint(bx, by float64) (x, y int) {
	return l.Board.X + int(bx*float64(l.CellW)), l.Board.Y + int(by*float64(l.CellH))
}
