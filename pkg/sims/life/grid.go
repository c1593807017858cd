package life

import "errors"

// Cell is the binary state of a single grid position.
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// ErrRagged is returned by FromRows when rows differ in length.
var ErrRagged = errors.New("life: rows have differing lengths")

// Grid is an immutable width x height arrangement of cells stored in row-major
// order. A nil *Grid reads as the empty grid.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid builds a grid by evaluating fill for every position. Negative
// dimensions are treated as zero.
func NewGrid(w, h int, fill func(x, y int) Cell) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h)}
	if fill == nil {
		return g
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = fill(x, y)
		}
	}
	return g
}

// FromRows copies a [y][x] boolean matrix into a Grid.
func FromRows(rows [][]bool) (*Grid, error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRagged
		}
	}
	return NewGrid(w, h, func(x, y int) Cell { return Cell(rows[y][x]) }), nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.h
}

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.Width() == 0 || g.Height() == 0 }

// In reports whether (x, y) addresses a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width() && y < g.Height()
}

// At returns the cell at (x, y). Out-of-range positions read as Dead.
func (g *Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Dead
	}
	return g.cells[y*g.w+x]
}

// Rows returns a fresh [y][x] copy of the grid.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.Height())
	for y := range rows {
		row := make([]bool, g.w)
		for x := range row {
			row[x] = bool(g.cells[y*g.w+x])
		}
		rows[y] = row
	}
	return rows
}

// Population counts the living cells.
func (g *Grid) Population() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// AppendBytes appends the grid as 0/1 bytes in row-major order.
func (g *Grid) AppendBytes(dst []uint8) []uint8 {
	if g == nil {
		return dst
	}
	for _, c := range g.cells {
		if c == Alive {
			dst = append(dst, 1)
			continue
		}
		dst = append(dst, 0)
	}
	return dst
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width() != o.Width() || g.Height() != o.Height() {
		return false
	}
	if g.Empty() {
		return true
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
