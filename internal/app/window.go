package app

import "lifegrid/internal/core"

// WindowSize returns the logical screen size for a board of the given size
// drawn at scale with a side panel. Empty boards still get a 1x1 area so the
// window can open.
func WindowSize(board core.Size, scale, panelWidth, panelHeight int) (int, int) {
	scale = max(scale, 1)
	w := board.W*scale + max(panelWidth, 0)
	h := max(board.H*scale, panelHeight)
	return max(w, 1), max(h, 1)
}
