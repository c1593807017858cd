package core

// ByteGrid is a row-major display buffer holding one byte per cell. Renderers
// read it; simulations refill it after each generation.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a buffer with the given dimensions. Negative
// dimensions become zero; a zero-sized buffer is valid and holds no cells.
func NewByteGrid(w, h int) *ByteGrid {
	g := &ByteGrid{}
	g.Resize(w, h)
	return g
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Resize changes the dimensions, reusing the backing array when it is large
// enough. Contents are cleared.
func (g *ByteGrid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.W, g.H = w, h
	n := w * h
	if cap(g.data) >= n {
		g.data = g.data[:n]
	} else {
		g.data = make([]uint8, n)
	}
	g.Clear()
}

// Load replaces the contents with a copy of src, truncated or zero-padded to
// the buffer size.
func (g *ByteGrid) Load(src []uint8) {
	n := copy(g.data, src)
	clear(g.data[n:])
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
