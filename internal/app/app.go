//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	ticker  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	running  bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The board waits for
// input until running is set or Space is pressed.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUD),
		ticker:   core.NewFixedStep(cfg.Rate),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		running:  cfg.Run,
		seed:     cfg.Seed,
	}
}

// Reset regenerates the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.ticker.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
		g.ticker.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.boardWidth())

	if g.tickOnce || (g.running && g.ticker.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		// HUD changes may start a run with different dimensions.
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.sim.Size(), g.scale, g.hud.Width(), g.hud.MinHeight())
}

func (g *Game) boardWidth() int { return g.sim.Size().W * g.scale }
