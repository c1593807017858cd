package life

import "lifegrid/pkg/core"

// Generate returns a w x h grid where every cell is independently Alive when
// its uniform draw from rng is <= survivalChance. A nil rng uses a freshly
// seeded source.
func Generate(w, h int, survivalChance float64, rng *core.RNG) *Grid {
	if rng == nil {
		rng = core.NewEntropyRNG()
	}
	return NewGrid(w, h, func(x, y int) Cell {
		return Cell(rng.Chance(survivalChance))
	})
}

// GenerateSeeded is Generate with a deterministic PCG source.
func GenerateSeeded(w, h int, survivalChance float64, seed int64) *Grid {
	return Generate(w, h, survivalChance, core.NewRNG(seed))
}
