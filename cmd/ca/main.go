//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/sims/threshold"

	"github.com/hajimehoshi/ebiten/v2"
)

type configurable interface {
	Apply(fields map[string]string) error
}

type tunable interface {
	SetWorkers(n int)
	SetLogger(l *log.Logger)
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}

	sim := factory(nil)
	if t, ok := sim.(tunable); ok {
		t.SetWorkers(cfg.Workers)
		if cfg.Verbose {
			t.SetLogger(log.New(os.Stderr, "life: ", log.LstdFlags))
		}
	}
	if c, ok := sim.(configurable); ok {
		if err := c.Apply(cfg.Fields()); err != nil {
			log.Fatal(err)
		}
	} else {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("lifegrid — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
