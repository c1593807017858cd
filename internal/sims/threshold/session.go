package threshold

import (
	"fmt"
	"log"

	"lifegrid/internal/core"
	"lifegrid/pkg/sims/life"
)

// Session owns the current generation of a threshold Life run. It holds
// references only; every generation is a fresh immutable grid.
type Session struct {
	settings   Settings
	grid       *life.Grid
	generation int
	last       life.Stats

	display *core.ByteGrid
	workers int
	logger  *log.Logger
}

// New returns a session with the given settings and no grid. Call Reset or
// Apply to generate the first generation.
func New(s Settings) *Session {
	return &Session{settings: s, display: core.NewByteGrid(0, 0)}
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "life" }

// Size returns the dimensions of the current grid, or of the configured
// board when no grid exists yet.
func (s *Session) Size() core.Size {
	if s.grid == nil {
		return core.Size{W: s.settings.Width, H: s.settings.Height}
	}
	return core.Size{W: s.grid.Width(), H: s.grid.Height()}
}

// Cells exposes the current grid as 0/1 bytes in row-major order.
func (s *Session) Cells() []uint8 { return s.display.Cells() }

// Grid returns the current generation, or nil before the first Reset.
func (s *Session) Grid() *life.Grid { return s.grid }

// Generation counts steps taken since the grid was generated.
func (s *Session) Generation() int { return s.generation }

// LastStats reports the transitions applied by the most recent step.
func (s *Session) LastStats() life.Stats { return s.last }

// Settings returns the settings of the current run.
func (s *Session) Settings() Settings { return s.settings }

// SetWorkers sets how many goroutines share a step. Values <= 1 step serially.
func (s *Session) SetWorkers(n int) { s.workers = n }

// SetLogger enables a one-line summary per generation. nil disables it.
func (s *Session) SetLogger(l *log.Logger) { s.logger = l }

// Reset generates a new grid from the current settings and seed.
func (s *Session) Reset(seed int64) {
	s.settings.Seed = seed
	s.start()
}

// Apply starts a new run from textual settings layered over the current
// ones. When any field is invalid the session is left exactly as it was.
func (s *Session) Apply(fields map[string]string) error {
	next, err := s.settings.With(fields)
	if err != nil {
		return err
	}
	s.settings = next
	s.start()
	return nil
}

func (s *Session) start() {
	cfg := s.settings
	s.grid = life.GenerateSeeded(cfg.Width, cfg.Height, cfg.SurvivalChance, cfg.Seed)
	s.generation = 0
	s.last = life.Stats{}
	s.refreshDisplay()
	if s.logger != nil {
		s.logger.Printf("new %dx%d board seed=%d population=%d rules=%d/%d/%d count=%s",
			cfg.Width, cfg.Height, cfg.Seed, s.grid.Population(),
			cfg.Rules.Starvation, cfg.Rules.Overpopulation, cfg.Rules.Birth, cfg.Rules.Counting)
	}
}

// Step advances one generation. Without a grid it does nothing.
func (s *Session) Step() {
	if s.grid == nil {
		return
	}
	s.grid, s.last = life.StepParallelWithStats(s.grid, s.settings.Rules, s.workers)
	s.generation++
	s.refreshDisplay()
	if s.logger != nil {
		s.logger.Printf("generation %d: population=%d births=%d starved=%d overpopulated=%d",
			s.generation, s.grid.Population(), s.last.Births, s.last.Starved, s.last.Overpopulated)
	}
}

// Status returns short human-readable lines describing the run.
func (s *Session) Status() []string {
	if s.grid == nil {
		return []string{"No board yet"}
	}
	r := s.settings.Rules
	return []string{
		fmt.Sprintf("Generation %d", s.generation),
		fmt.Sprintf("Population %d/%d", s.grid.Population(), s.grid.Width()*s.grid.Height()),
		fmt.Sprintf("Rules S%d O%d B%d (%s)", r.Starvation, r.Overpopulation, r.Birth, r.Counting),
		fmt.Sprintf("+%d born, -%d starved, -%d crowded", s.last.Births, s.last.Starved, s.last.Overpopulated),
	}
}

func (s *Session) refreshDisplay() {
	s.display.Resize(s.grid.Width(), s.grid.Height())
	s.display.Load(s.grid.AppendBytes(nil))
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
