package render

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/pkg/sims/life"
)

// HeatPalette colors neighbor counts 0..8, transparent at zero.
var HeatPalette = []color.RGBA{
	{A: 0},
	{R: 40, G: 60, B: 160, A: 90},
	{R: 40, G: 140, B: 200, A: 110},
	{R: 60, G: 190, B: 120, A: 130},
	{R: 200, G: 200, B: 60, A: 150},
	{R: 230, G: 150, B: 40, A: 170},
	{R: 230, G: 90, B: 40, A: 190},
	{R: 220, G: 40, B: 40, A: 210},
	{R: 255, G: 0, B: 120, A: 230},
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// NeighborCounts writes the living-neighbor count of every cell of g into
// dst, resizing it to the grid's dimensions first. A nil dst is allocated.
func NeighborCounts(dst *core.ByteGrid, g *life.Grid) *core.ByteGrid {
	w, h := g.Width(), g.Height()
	if dst == nil {
		dst = core.NewByteGrid(w, h)
	} else if dst.W != w || dst.H != h {
		dst.Resize(w, h)
	}
	cells := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[dst.Index(x, y)] = uint8(life.CountLivingNeighbors(g, x, y))
		}
	}
	return dst
}
