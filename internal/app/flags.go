package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Rate    int
	Seed    int64
	Workers int
	Verbose bool
	Run     bool
	HUD     int

	Size           string
	SurvivalChance string
	Starvation     string
	Overpopulation string
	Birth          string
	CountMode      string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:   "life",
		Scale: 8,
		TPS:   60,
		Rate:  8,
		Seed:  42,
		HUD:   240,

		Size:           "64",
		SurvivalChance: "0.3",
		Starvation:     "2",
		Overpopulation: "3",
		Birth:          "3",
		CountMode:      "living",
	}
}

// Bind attaches the configuration to the provided FlagSet. Settings flags
// are kept as text and validated by the simulation, the same way the
// settings panel values are.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board generation")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (<=1 steps serially)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log a summary line per generation")
	fs.BoolVar(&c.Run, "run", c.Run, "start stepping immediately instead of waiting for input")
	fs.IntVar(&c.HUD, "hud", c.HUD, "settings panel width in pixels (0 hides it)")

	fs.StringVar(&c.Size, "size", c.Size, "board width and height")
	fs.StringVar(&c.SurvivalChance, "survival", c.SurvivalChance, "probability a cell starts alive")
	fs.StringVar(&c.Starvation, "starvation", c.Starvation, "alive cells with fewer living neighbors die")
	fs.StringVar(&c.Overpopulation, "overpopulation", c.Overpopulation, "alive cells with more living neighbors die")
	fs.StringVar(&c.Birth, "birth", c.Birth, "dead cells with exactly this many living neighbors are born")
	fs.StringVar(&c.CountMode, "count", c.CountMode, "neighbor counting: living or in_bounds")
}

// Fields returns the board settings in the key/value form the simulation
// parses.
func (c *Config) Fields() map[string]string {
	return map[string]string{
		"size":            c.Size,
		"survival_chance": c.SurvivalChance,
		"starvation":      c.Starvation,
		"overpopulation":  c.Overpopulation,
		"birth":           c.Birth,
		"count_mode":      c.CountMode,
		"seed":            strconv.FormatInt(c.Seed, 10),
	}
}
