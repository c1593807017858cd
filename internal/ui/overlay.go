//go:build ebiten

package ui

import (
	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type gridProvider interface {
	Grid() *life.Grid
}

// Overlay tints every cell by its living-neighbor count on top of the board.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHeat bool

	painter *render.GridPainter
	counts  *core.ByteGrid
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the heat map on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHeat {
		return
	}
	provider, ok := o.sim.(gridProvider)
	if !ok {
		return
	}
	g := provider.Grid()
	if g.Empty() {
		return
	}
	if o.painter == nil {
		o.painter = render.NewGridPainter(g.Width(), g.Height())
	} else if w, h := o.painter.Size(); w != g.Width() || h != g.Height() {
		o.painter = render.NewGridPainter(g.Width(), g.Height())
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.counts = render.NeighborCounts(o.counts, g)
	o.painter.BlitPalette(screen, o.counts.Cells(), render.HeatPalette, scale)
}
