package sweep

import (
	"context"
	"errors"
	"testing"

	"lifegrid/internal/sims/threshold"
	"lifegrid/pkg/sims/life"
)

func smallBase() threshold.Settings {
	s := threshold.DefaultSettings()
	s.Width, s.Height = 12, 12
	s.SurvivalChance = 0.4
	s.Seed = 5
	return s
}

func TestCandidatesCoverRanges(t *testing.T) {
	cfg := Config{
		Base:           smallBase(),
		Starvation:     Range{Min: 1, Max: 2},
		Overpopulation: Range{Min: 3, Max: 3},
		Birth:          Range{Min: 2, Max: 4},
	}
	cfg.Base.Rules.Counting = life.CountInBounds
	got := Candidates(cfg)
	if len(got) != 6 {
		t.Fatalf("expected 6 candidates, got %d", len(got))
	}
	for _, r := range got {
		if r.Counting != life.CountInBounds {
			t.Fatal("candidates should inherit the counting mode")
		}
	}
}

func TestEvaluateInvertedRulesGoExtinct(t *testing.T) {
	res := Evaluate(smallBase(), life.Rules{Starvation: 3, Overpopulation: 1, Birth: 9}, 4, 1)
	if res.Extinct != 4 || res.MeanDensity != 0 || res.StdDensity != 0 {
		t.Fatalf("unexpected result %v", res)
	}
}

func TestEvaluateMatchesManualRun(t *testing.T) {
	base := smallBase()
	rules := life.Classic()
	res := Evaluate(base, rules, 1, 6)

	g := life.GenerateSeeded(base.Width, base.Height, base.SurvivalChance, base.Seed)
	for i := 0; i < 6; i++ {
		g = life.Step(g, rules)
	}
	if res.MeanPopulation != float64(g.Population()) {
		t.Fatalf("population %.0f, expected %d", res.MeanPopulation, g.Population())
	}
	if want := float64(g.Population()) / 144; res.MeanDensity != want {
		t.Fatalf("density %v, expected %v", res.MeanDensity, want)
	}
}

func TestRunSortsByDensity(t *testing.T) {
	cfg := Config{
		Base:           smallBase(),
		Starvation:     Range{Min: 0, Max: 3},
		Overpopulation: Range{Min: 1, Max: 4},
		Birth:          Range{Min: 3, Max: 3},
		Seeds:          3,
		Steps:          4,
		Workers:        4,
	}
	results, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 16 {
		t.Fatalf("expected 16 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].MeanDensity > results[i-1].MeanDensity {
			t.Fatalf("results not sorted at %d", i)
		}
	}
	again, _ := Run(context.Background(), cfg)
	for i := range results {
		if results[i] != again[i] {
			t.Fatalf("sweep not deterministic at %d: %v vs %v", i, results[i], again[i])
		}
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := Config{Base: smallBase(), Birth: Range{Min: 0, Max: 8}, Seeds: 1, Steps: 1}
	if _, err := Run(ctx, cfg); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
