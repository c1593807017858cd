package life

import (
	"testing"

	"lifegrid/pkg/core"
)

func TestGenerateEmpty(t *testing.T) {
	g := Generate(0, 0, 0.5, nil)
	if !g.Empty() || g.Height() != 0 || len(g.Rows()) != 0 {
		t.Fatalf("expected empty grid, got %dx%d", g.Width(), g.Height())
	}

	rows := GenerateSeeded(0, 4, 0.5, 1).Rows()
	if len(rows) != 4 {
		t.Fatalf("expected 4 zero-length rows, got %d", len(rows))
	}
	for _, row := range rows {
		if len(row) != 0 {
			t.Fatalf("expected zero-length row, got %d", len(row))
		}
	}
}

func TestGenerateCertainSurvival(t *testing.T) {
	g := Generate(13, 7, 1.0, nil)
	if g.Population() != 13*7 {
		t.Fatalf("population %d, expected every cell alive", g.Population())
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a := GenerateSeeded(40, 30, 0.3, 99)
	b := GenerateSeeded(40, 30, 0.3, 99)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	if a.Equal(GenerateSeeded(40, 30, 0.3, 100)) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestGenerateDrawsPerCell(t *testing.T) {
	// A single shared draw would make the grid uniformly alive or dead.
	g := GenerateSeeded(64, 64, 0.5, 5)
	pop := g.Population()
	if pop == 0 || pop == 64*64 {
		t.Fatalf("population %d suggests correlated draws", pop)
	}
	density := float64(pop) / float64(64*64)
	if density < 0.4 || density > 0.6 {
		t.Fatalf("density %.3f far from survival chance 0.5", density)
	}
}

func TestGenerateUsesCallerRNG(t *testing.T) {
	if !Generate(12, 9, 0.4, core.NewRNG(3)).Equal(GenerateSeeded(12, 9, 0.4, 3)) {
		t.Fatal("explicit RNG with seed 3 should match GenerateSeeded")
	}
	if Generate(5, 5, 0, core.NewRNG(1)).Population() != 0 {
		t.Fatal("chance 0 should leave every cell dead")
	}
}
