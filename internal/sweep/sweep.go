// Package sweep evaluates threshold combinations headlessly and ranks them by
// how much of the board stays alive.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"lifegrid/internal/sims/threshold"
	"lifegrid/pkg/sims/life"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Range is an inclusive integer interval.
type Range struct {
	Min, Max int
}

// Config describes one sweep.
type Config struct {
	Base threshold.Settings

	Starvation     Range
	Overpopulation Range
	Birth          Range

	Seeds   int
	Steps   int
	Workers int
}

// Result summarises one rule set across all seeds.
type Result struct {
	Rules          life.Rules
	MeanDensity    float64
	StdDensity     float64
	MeanPopulation float64
	Extinct        int
}

func (r Result) String() string {
	return fmt.Sprintf("S%d O%d B%d density=%.3f±%.3f pop=%.1f extinct=%d",
		r.Rules.Starvation, r.Rules.Overpopulation, r.Rules.Birth,
		r.MeanDensity, r.StdDensity, r.MeanPopulation, r.Extinct)
}

// Candidates lists every rule triple in the configured ranges. The neighbor
// counting mode comes from the base settings.
func Candidates(cfg Config) []life.Rules {
	var out []life.Rules
	for s := cfg.Starvation.Min; s <= cfg.Starvation.Max; s++ {
		for o := cfg.Overpopulation.Min; o <= cfg.Overpopulation.Max; o++ {
			for b := cfg.Birth.Min; b <= cfg.Birth.Max; b++ {
				out = append(out, life.Rules{
					Starvation:     s,
					Overpopulation: o,
					Birth:          b,
					Counting:       cfg.Base.Rules.Counting,
				})
			}
		}
	}
	return out
}

// Evaluate runs rules from seeds consecutive seeds starting at base.Seed and
// reports the final population density after steps generations.
func Evaluate(base threshold.Settings, rules life.Rules, seeds, steps int) Result {
	seeds = max(seeds, 1)
	cells := base.Width * base.Height
	densities := make([]float64, seeds)
	populations := make([]float64, seeds)
	res := Result{Rules: rules}

	for i := range densities {
		s := base
		s.Rules = rules
		sess := threshold.New(s)
		sess.Reset(base.Seed + int64(i))
		for step := 0; step < steps; step++ {
			sess.Step()
		}
		pop := sess.Grid().Population()
		if pop == 0 {
			res.Extinct++
		}
		populations[i] = float64(pop)
		if cells > 0 {
			densities[i] = float64(pop) / float64(cells)
		}
	}

	res.MeanPopulation = stat.Mean(populations, nil)
	if seeds > 1 {
		res.MeanDensity, res.StdDensity = stat.MeanStdDev(densities, nil)
	} else {
		res.MeanDensity = densities[0]
	}
	return res
}

// Run evaluates every candidate on a bounded worker group and returns the
// results sorted by mean density, densest first.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	candidates := Candidates(cfg)
	results := make([]Result, len(candidates))
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, rules := range candidates {
		i, rules := i, rules
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(cfg.Base, rules, cfg.Seeds, cfg.Steps)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MeanDensity > results[j].MeanDensity
	})
	return results, nil
}
