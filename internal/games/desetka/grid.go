package desetka

// Grid is the rows x cols board. Row 0 is the top.
type Grid struct {
	rows, cols int
	slots      [][]*Cell
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.slots = make([][]*Cell, rows)
	for r := range g.slots {
		g.slots[r] = make([]*Cell, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) is a slot of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col), or nil for empty or out-of-bounds slots.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.slots[row][col]
}

// Place puts c into the slot named by its Row and Col.
func (g *Grid) Place(c *Cell) {
	if c == nil || !g.InBounds(c.Row, c.Col) {
		return
	}
	g.slots[c.Row][c.Col] = c
}

// Remove clears the slot and returns what was there.
func (g *Grid) Remove(row, col int) *Cell {
	c := g.At(row, col)
	if c != nil {
		g.slots[row][col] = nil
	}
	return c
}

// Contains reports whether c still occupies its slot.
func (g *Grid) Contains(c *Cell) bool {
	return c != nil && g.At(c.Row, c.Col) == c
}

// Cells returns occupied cells in row-major order.
func (g *Grid) Cells() []*Cell {
	var out []*Cell
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if cell := g.slots[r][c]; cell != nil {
				out = append(out, cell)
			}
		}
	}
	return out
}

// Count returns the number of occupied slots.
func (g *Grid) Count() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		n += g.RowCount(r)
	}
	return n
}

// RowCount returns the number of occupied slots in a row.
func (g *Grid) RowCount(row int) int {
	if row < 0 || row >= g.rows {
		return 0
	}
	n := 0
	for _, c := range g.slots[row] {
		if c != nil {
			n++
		}
	}
	return n
}

// RowOccupied reports whether any cell sits in the row.
func (g *Grid) RowOccupied(row int) bool {
	return g.RowCount(row) > 0
}

// LowestOccupiedRow returns the bottom-most row holding a cell, or -1.
func (g *Grid) LowestOccupiedRow() int {
	for r := g.rows - 1; r >= 0; r-- {
		if g.RowOccupied(r) {
			return r
		}
	}
	return -1
}

// Gravity compacts every column downward, keeping the order of cells.
// It returns whether any cell moved.
func (g *Grid) Gravity() bool {
	moved := false
	for c := 0; c < g.cols; c++ {
		target := g.rows - 1
		for r := g.rows - 1; r >= 0; r-- {
			cell := g.slots[r][c]
			if cell == nil {
				continue
			}
			if r != target {
				g.slots[target][c] = cell
				g.slots[r][c] = nil
				cell.Row = target
				moved = true
			}
			target--
		}
	}
	return moved
}

var neighbours = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// UpdateFreeze recomputes frozen flags from the current ice cells.
// Every non-ice orthogonal neighbour of an ice cell is frozen; nothing else is.
func (g *Grid) UpdateFreeze() {
	cells := g.Cells()
	for _, c := range cells {
		c.Frozen = false
	}
	for _, c := range cells {
		if c.Special != SpecialIce {
			continue
		}
		for _, d := range neighbours {
			if n := g.At(c.Row+d[0], c.Col+d[1]); n != nil && n.Special != SpecialIce {
				n.Frozen = true
			}
		}
	}
}

// TickBombs decrements every bomb countdown and removes bombs that reach zero.
// The removed bombs are returned in row-major order.
func (g *Grid) TickBombs() []*Cell {
	var detonated []*Cell
	for _, c := range g.Cells() {
		if c.Special != SpecialBomb {
			continue
		}
		c.BombTimer--
		if c.BombTimer <= 0 {
			g.Remove(c.Row, c.Col)
			detonated = append(detonated, c)
		}
	}
	return detonated
}

// ShiftUp moves every row up by one and leaves the bottom row empty.
// The caller checks that row 0 is empty first.
func (g *Grid) ShiftUp() {
	top := g.slots[0]
	copy(g.slots, g.slots[1:])
	for c := range top {
		top[c] = nil
	}
	g.slots[g.rows-1] = top
	for r := 0; r < g.rows-1; r++ {
		for _, cell := range g.slots[r] {
			if cell != nil {
				cell.Row = r
			}
		}
	}
}

// orthogonal returns the occupied neighbours of c.
func (g *Grid) orthogonal(c *Cell) []*Cell {
	var out []*Cell
	for _, d := range neighbours {
		if n := g.At(c.Row+d[0], c.Col+d[1]); n != nil {
			out = append(out, n)
		}
	}
	return out
}
